package middleware

import (
	"strings"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/auth"
	"threadhub_backend/internal/config"
	"threadhub_backend/internal/logger"
	"threadhub_backend/internal/models"
	"threadhub_backend/internal/repositories"
	"threadhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// Identity is the immutable per-request record of the authenticated user,
// built once by AuthMiddleware and read by every downstream check.
// Status is a pointer so a gate can tell "blocked" apart from "never set".
type Identity struct {
	ID     string
	Name   string
	Email  string
	Role   models.UserRole
	Status *bool
}

const identityKey = string(contextkeys.IdentityContextKey)

// AuthMiddleware verifies the bearer token and resolves it to a live user
// record. It is deliberately stateless about the active flag: a blocked
// user still authenticates and is rejected by RequireActive instead.
func AuthMiddleware(userRepo repositories.UserRepository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseAccessToken(tokenStr, cfg.JWT.AccessSecret)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		// The token may outlive its user; the record is authoritative.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.ErrTokenUserNotFound)
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		status := user.Status
		c.Set(identityKey, &Identity{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Status: &status,
		})

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetIdentity extracts the authenticated identity from the gin context.
func GetIdentity(c *gin.Context) (*Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}

// RequireRoles rejects identities whose role is not in the allowlist.
// The 403 names the roles that would have been accepted.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make([]string, len(roles))
	roleSet := make(map[models.UserRole]bool, len(roles))
	for i, r := range roles {
		allowed[i] = string(r)
		roleSet[r] = true
	}
	allowedList := strings.Join(allowed, ", ")

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		if !roleSet[identity.Role] {
			apperrors.HandleError(c, apperrors.NewForbiddenError(
				"Access denied. Allowed roles: "+allowedList))
			return
		}

		c.Next()
	}
}

// RequireActive rejects blocked accounts. An identity without a status is
// a wiring error (AuthMiddleware always sets one) and reports as 500, not
// as a client failure.
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || identity.Status == nil {
			logger.CtxError(c.Request.Context(), "status check reached without identity status")
			apperrors.HandleError(c, apperrors.ErrConfigInvalid)
			return
		}

		if !*identity.Status {
			apperrors.HandleError(c, apperrors.ErrAccountBlocked)
			return
		}

		c.Next()
	}
}
