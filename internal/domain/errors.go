// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUserID is returned when a record or user carries no user ID.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyUsername is returned when a username is empty.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrUsernameTooLong is returned when a username exceeds the storable length.
	ErrUsernameTooLong = errors.New("username must be at most 64 characters long")

	// ErrEmptyPassword is returned when a password is empty.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrEmptyHashedPassword is returned when a stored user carries no credential.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrInvalidAmount is returned when a record amount is NaN or infinite.
	ErrInvalidAmount = errors.New("amount must be a finite number")

	// ErrInvalidRecordKind is returned when a record kind is not recognized.
	ErrInvalidRecordKind = errors.New("invalid record kind")
)

// ValidationError provides field-level context for a validation failure.
// It wraps one of the sentinel errors above so callers can still use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
