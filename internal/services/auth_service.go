package services

import (
	"time"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/auth"
	"threadhub_backend/internal/config"
	"threadhub_backend/internal/models"
	"threadhub_backend/internal/repositories"
	"threadhub_backend/internal/services/dto"
	"threadhub_backend/internal/validator"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	validator *validator.Validator
	cfg       *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	v *validator.Validator,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		validator: v,
		cfg:       cfg,
	}
}

// Register creates a new user with role "user" and active status.
//
// The duplicate-email lookup deliberately runs before the email format
// check; an already-registered address reports as such even when it is
// also malformed.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.ErrFieldsRequired
	}

	_, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		return apperrors.ErrEmailAlreadyExists
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}

	if !s.validator.IsEmail(req.Email) {
		return apperrors.ErrInvalidEmail
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleUser,
		Status:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login verifies credentials and issues the token pair. Unknown email and
// wrong password produce the same response so neither is probeable.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Email and password are required")
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessTTL := time.Duration(s.cfg.JWT.AccessTTLMinutes) * time.Minute
	accessToken, err := auth.GenerateAccessToken(user, s.cfg.JWT.AccessSecret, accessTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshTTL := time.Duration(s.cfg.JWT.RefreshTTLDays) * 24 * time.Hour
	refreshToken, err := auth.GenerateRefreshToken(user, s.cfg.JWT.RefreshSecret, refreshTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Single active refresh token per user; a new login displaces the
	// previous session's token.
	if err := s.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewPublicUser(user),
	}, nil
}
