package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// RecordKind identifies which collection a financial record belongs to.
// Transactions and budget items share one shape and one set of CRUD rules;
// the kind only selects the storage collection and the wording of errors.
type RecordKind string

const (
	KindTransaction RecordKind = "transaction"
	KindBudgetItem  RecordKind = "budget item"
)

// Valid reports whether the kind is one of the known record kinds.
func (k RecordKind) Valid() bool {
	return k == KindTransaction || k == KindBudgetItem
}

// Record is a user-owned financial record: a transaction or a budget item.
// The owner is assigned at creation and never changes for the life of the
// record; updates are full replacements of everything except ID, UserID and
// CreatedAt.
type Record struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRecord creates a new Record owned by the given user.
// It generates a new UUID and sets the bookkeeping timestamps.
// Returns an error if validation fails.
func NewRecord(userID uuid.UUID, amount float64, category, description string, occurredAt time.Time) (*Record, error) {
	now := time.Now().UTC()
	if occurredAt.IsZero() {
		occurredAt = now
	}

	record := &Record{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the Record has valid data.
// Returns an error if any field fails validation.
func (r *Record) Validate() error {
	if r.ID == uuid.Nil {
		return ErrInvalidID
	}

	if r.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		return ErrInvalidAmount
	}

	return nil
}
