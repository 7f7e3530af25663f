package apperrors

import "errors"

// Authentication errors
var (
	// ErrInvalidCredentials covers unknown e-mail and wrong password alike, so
	// callers can never tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers every token failure (malformed, bad signature,
	// expired) as a single opaque error.
	ErrInvalidToken    = errors.New("invalid token")
	ErrAccountDisabled = errors.New("account is disabled")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Resource errors
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("committee session not found")
	ErrMemberNotFound     = errors.New("committee member not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrNoticeNotFound     = errors.New("notice not found")
	ErrResourceNotFound   = errors.New("resource not found")
)

// Validation errors
var (
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrBadRequest        = errors.New("bad request")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
