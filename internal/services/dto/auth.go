package dto

import "threadhub_backend/internal/models"

// RegisterRequest is the registration payload. The fields carry no
// binding tags on purpose: presence and ordering of the checks (missing
// fields, duplicate email, email format) belong to AuthService.Register
// so the exact error messages are produced there.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is the user projection returned to clients. It never carries
// the password hash or the stored refresh token.
type PublicUser struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	Status bool            `json:"status"`
}

// LoginResponse carries the issued tokens and the public user projection.
type LoginResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         PublicUser `json:"user"`
}

// NewPublicUser projects a user model onto its public shape.
func NewPublicUser(user *models.User) PublicUser {
	return PublicUser{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
}
