package models

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// ValidRole reports whether the value is a member of the role enum.
func ValidRole(role string) bool {
	switch UserRole(role) {
	case UserRoleAdmin, UserRoleUser:
		return true
	default:
		return false
	}
}
