package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountBlocked     ErrorCode = "ACCOUNT_BLOCKED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound   ErrorCode = "USER_NOT_FOUND"
	CodeThreadNotFound ErrorCode = "THREAD_NOT_FOUND"
	CodeNotFound       ErrorCode = "NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists  ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeNotThreadAuthor     ErrorCode = "NOT_THREAD_AUTHOR"
	CodeCannotModifySelf    ErrorCode = "CANNOT_MODIFY_SELF"
	CodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)
