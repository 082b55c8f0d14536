package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource already exists")
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrDependency          = errors.New("dependency failure")
	ErrUserNotConfirmed    = errors.New("user not confirmed")
	ErrNewPasswordRequired = errors.New("new password required")
	ErrAuthNotConfigured   = errors.New("authentication not configured")
	ErrAuthFailed          = errors.New("authentication returned no tokens")
)

// ValidationError describes a rejected input field. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
