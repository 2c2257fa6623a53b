package api

import (
	"errors"
	"net/http"

	"github.com/chwebb02/webDevBudgetBot/internal/api/shared"
	"github.com/chwebb02/webDevBudgetBot/internal/service"
)

// MapErrorToStatusCode maps service errors to appropriate HTTP status codes
// based on the error kind. The services never encode status codes; this is
// the only place the translation happens.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, service.ErrUserNotFound):
		return "User does not exist"

	case errors.Is(err, service.ErrBadLogin):
		return "Bad login"

	case errors.Is(err, service.ErrRecordNotFound):
		return "Record does not exist"

	case errors.Is(err, service.ErrInvalidInput):
		return "Malformed request"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError maps a service error to its status code and sanitized
// message and writes the response, logging the underlying error.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
