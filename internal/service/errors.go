// Package service provides the business-logic layer: account registration and
// login, and CRUD-with-ownership over transactions and budget items.
package service

import (
	"errors"
	"fmt"
)

// Error kinds - sentinel errors distinguishing the failure classes callers
// care about. Services wrap these with entity-specific sentinels below;
// callers check with errors.Is(). The API layer alone maps kinds to HTTP
// status codes, services never encode transport concerns.
var (
	// ErrInvalidInput indicates a structurally malformed record or missing
	// required field. Caller error, not retryable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a uniqueness violation; the caller should choose
	// a different identifier.
	ErrConflict = errors.New("conflict")

	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the presented credential does not match the
	// stored credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal indicates a store or infrastructure failure not otherwise
	// classified. Store failures propagate immediately; services never retry.
	ErrInternal = errors.New("internal error")
)

// Entity-specific sentinels carrying the user-visible failure reasons.
var (
	// ErrUsernameExists is returned by Register when the username is taken.
	ErrUsernameExists = fmt.Errorf("%w: username already exists", ErrConflict)

	// ErrUserNotFound is returned by Login when no user has the given username.
	ErrUserNotFound = fmt.Errorf("%w: user does not exist", ErrNotFound)

	// ErrBadLogin is returned by Login when the password does not match.
	ErrBadLogin = fmt.Errorf("%w: bad login", ErrUnauthorized)

	// ErrRecordNotFound is returned by record operations referencing an ID
	// that does not exist.
	ErrRecordNotFound = fmt.Errorf("%w: record does not exist", ErrNotFound)
)

// ServiceError wraps unexpected errors from a service with operation context.
// Expected conditions are returned as the sentinels above; everything else is
// wrapped here and treated as an internal failure.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "register", "create_record")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is reports ErrInternal for any ServiceError so callers can classify
// wrapped infrastructure failures without knowing their concrete cause.
func (e *ServiceError) Is(target error) bool {
	return target == ErrInternal
}

// NewServiceError creates a new ServiceError.
// It returns known sentinel errors directly without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Sentinels pass through untouched so errors.Is keeps working
	// at the call site.
	if errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthorized) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
