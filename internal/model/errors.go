package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmployeeNotFound is returned when no employee has the requested id.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDirectoryNotFound is returned when the backing document does not exist.
	ErrDirectoryNotFound = errors.New("directory file not found")
	// ErrCorruptData is returned when the backing document cannot be parsed.
	ErrCorruptData = errors.New("directory data is corrupt")
	// ErrIO is returned when the backing document cannot be read or written.
	ErrIO = errors.New("directory io failure")
	// ErrAuthenticationFailed is returned for unknown credentials.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidToken is returned for bearer tokens that fail validation.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports input that violates a business rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError formats a ValidationError.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
