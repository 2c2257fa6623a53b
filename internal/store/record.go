package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/chwebb02/webDevBudgetBot/internal/domain"
)

// RecordStore defines the interface for persisting user-owned financial
// records. One implementation serves both transactions and budget items;
// the record kind is fixed when the store is constructed and selects the
// underlying collection.
type RecordStore interface {
	// Kind reports which record kind this store persists.
	Kind() domain.RecordKind

	// Create saves a new record to the store.
	// Returns validation errors from the domain Record if data is invalid.
	Create(ctx context.Context, record *domain.Record) error

	// GetByID retrieves a record by its unique ID.
	// Returns ErrRecordNotFound if the record does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)

	// ListByUser retrieves all records owned by the given user in
	// store-defined order. Returns an empty slice, never an error, when the
	// user owns none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error)

	// Update replaces the stored record at the incoming record's ID.
	// The owner and creation timestamp of the stored record are preserved.
	// Returns ErrRecordNotFound if the record does not exist.
	Update(ctx context.Context, record *domain.Record) (*domain.Record, error)

	// Delete removes the record and returns its prior value.
	// Returns ErrRecordNotFound if the record does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Record, error)

	// WithTx returns a new RecordStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) RecordStore
}
