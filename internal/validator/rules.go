package validator

import (
	"log"

	"threadhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers application-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup error: the application must not run without its rules.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': value must be a member of the role enum.
	mustRegister("is-user-role", validateUserRole)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is handled by 'required'
	}
	return models.ValidRole(value)
}
