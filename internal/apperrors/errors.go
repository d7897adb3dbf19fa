package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class across the application.
type ErrorCode string

// AppError is the application error carried from services up to handlers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError.
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap creates an AppError chaining an underlying error.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy of the error carrying extra details.
// Predefined errors are shared; never mutate them in place.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Incorrect email or password", http.StatusBadRequest)
	ErrUnauthorized       = New(CodeUnauthorized, "User is not authenticated", http.StatusUnauthorized)
	ErrMissingToken       = New(CodeUnauthorized, "Token is invalid or unavailable", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Session has expired or token is invalid", http.StatusUnauthorized)
	ErrTokenUserNotFound  = New(CodeUnauthorized, "User for this token no longer exists", http.StatusUnauthorized)

	// Authorization
	ErrForbidden        = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrAccountBlocked   = New(CodeAccountBlocked, "Your account is blocked by admin", http.StatusForbidden)
	ErrNotThreadAuthor  = New(CodeNotThreadAuthor, "Forbidden: you are not the author", http.StatusForbidden)
	ErrCannotModifySelf = New(CodeCannotModifySelf, "You cannot deactivate your own account", http.StatusForbidden)

	// Registration / validation
	ErrFieldsRequired     = New(CodeValidationFailed, "All fields are required", http.StatusBadRequest)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "The email is already registered", http.StatusBadRequest)
	ErrInvalidEmail       = New(CodeInvalidEmail, "The email isn't valid", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrValidationFailed   = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Threads
	ErrContentRequired     = New(CodeValidationFailed, "Content is required", http.StatusBadRequest)
	ErrThreadNotFound      = New(CodeThreadNotFound, "Thread not found", http.StatusNotFound)
	ErrUnsupportedFileType = New(CodeUnsupportedFileType, "Unsupported file type", http.StatusBadRequest)

	// Users
	ErrUserNotFound    = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrInvalidUserRole = New(CodeInvalidUserRole, "Invalid role value", http.StatusBadRequest)
	ErrStatusNotBool   = New(CodeValidationFailed, "Status must be a boolean value (true/false)", http.StatusBadRequest)

	// System
	ErrConfigInvalid = New(CodeConfigInvalid, "System configuration is not valid", http.StatusInternalServerError)
)

// ValidationError builds a validation error carrying field details.
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

// InternalError wraps an unexpected error into a 500. An error that is
// already an AppError keeps its original code and status.
func InternalError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternalError, "Server error", http.StatusInternalServerError)
}

// NewBadRequestError creates a 400 with a custom message.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// NewForbiddenError creates a 403 with a custom message.
func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// NewUnauthorizedError creates a 401 with a custom message.
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

// NewNotFoundError creates a 404 with a custom message.
func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}
