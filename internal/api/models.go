// Package api provides HTTP handlers for the API.
package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/chwebb02/webDevBudgetBot/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
// Registration and login return the user's ID and nothing more; any session
// layer is the surrounding system's concern.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// CreateRecordRequest defines the payload for creating a transaction or
// budget item. The owner is fixed here at creation time and never changes.
type CreateRecordRequest struct {
	UserID      string    `json:"user_id" validate:"required,uuid"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// UpdateRecordRequest defines the payload for the full-replace update of a
// transaction or budget item. The ID must reference an existing record;
// there is no partial-patch semantics.
type UpdateRecordRequest struct {
	ID          string    `json:"id" validate:"required,uuid"`
	UserID      string    `json:"user_id" validate:"required,uuid"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RecordResponse represents the response data for a transaction or budget item.
type RecordResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// recordToResponse transforms a domain record into its response form.
func recordToResponse(record *domain.Record) RecordResponse {
	return RecordResponse{
		ID:          record.ID,
		UserID:      record.UserID,
		Amount:      record.Amount,
		Category:    record.Category,
		Description: record.Description,
		OccurredAt:  record.OccurredAt,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// recordsToResponse transforms a slice of domain records, preserving the
// store-defined order and yielding an empty array (not null) for no records.
func recordsToResponse(records []*domain.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, recordToResponse(record))
	}
	return out
}
