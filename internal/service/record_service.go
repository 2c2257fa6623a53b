package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chwebb02/webDevBudgetBot/internal/domain"
	"github.com/chwebb02/webDevBudgetBot/internal/store"
)

// RecordService provides CRUD-with-ownership over one kind of user-owned
// financial record. Transactions and budget items share no behavior
// differences, so there is a single implementation instantiated once per
// kind with its own store.
type RecordService interface {
	// Kind reports which record kind this service manages.
	Kind() domain.RecordKind

	// Create validates and persists a new record with a freshly assigned ID
	// and returns the stored form. Returns ErrInvalidInput if the record is
	// nil or structurally malformed.
	Create(ctx context.Context, record *domain.Record) (*domain.Record, error)

	// GetByID retrieves a record by its ID.
	// Returns ErrRecordNotFound if no record with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)

	// ListByUser returns all records of this kind owned by the user, in
	// store-defined order. Returns an empty slice, never an error, when the
	// user owns none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error)

	// Update replaces the full stored record at the incoming record's ID and
	// returns the stored form. The owner association is immutable; the stored
	// record keeps its original UserID and CreatedAt. Returns
	// ErrRecordNotFound if the ID does not exist, ErrInvalidInput if the
	// record is nil or carries no ID.
	Update(ctx context.Context, record *domain.Record) (*domain.Record, error)

	// Delete removes the record and returns its prior value.
	// Returns ErrRecordNotFound if the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Record, error)
}

// recordServiceImpl implements the RecordService interface.
type recordServiceImpl struct {
	recordStore store.RecordStore
	logger      *slog.Logger
}

// NewRecordService creates a new RecordService over the given store.
// The store fixes the record kind.
func NewRecordService(recordStore store.RecordStore, logger *slog.Logger) RecordService {
	if recordStore == nil {
		panic("recordStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &recordServiceImpl{
		recordStore: recordStore,
		logger: logger.With(
			slog.String("component", "record_service"),
			slog.String("kind", string(recordStore.Kind()))),
	}
}

// Kind reports which record kind this service manages.
func (s *recordServiceImpl) Kind() domain.RecordKind {
	return s.recordStore.Kind()
}

// Create validates and persists a new record.
func (s *recordServiceImpl) Create(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is required", ErrInvalidInput)
	}

	stored, err := domain.NewRecord(
		record.UserID,
		record.Amount,
		record.Category,
		record.Description,
		record.OccurredAt,
	)
	if err != nil {
		s.logger.Warn("record validation failed during create",
			"error", err,
			"user_id", record.UserID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.recordStore.Create(ctx, stored); err != nil {
		s.logger.Error("failed to create record",
			"error", err,
			"record_id", stored.ID,
			"user_id", stored.UserID)
		return nil, NewServiceError("create_record", "failed to save record", err)
	}

	s.logger.Info("record created successfully",
		"record_id", stored.ID,
		"user_id", stored.UserID)

	return stored, nil
}

// GetByID retrieves a record by its ID.
func (s *recordServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	record, err := s.recordStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			s.logger.Debug("record not found", "record_id", id)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("failed to get record",
			"error", err,
			"record_id", id)
		return nil, NewServiceError("get_record", "failed to retrieve record", err)
	}

	return record, nil
}

// ListByUser returns all records owned by the user.
func (s *recordServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error) {
	records, err := s.recordStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list records for user",
			"error", err,
			"user_id", userID)
		return nil, NewServiceError("list_records", "failed to list records", err)
	}

	s.logger.Debug("listed records for user",
		"user_id", userID,
		"count", len(records))

	return records, nil
}

// Update replaces the full stored record at the incoming record's ID.
func (s *recordServiceImpl) Update(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is required", ErrInvalidInput)
	}
	if record.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: record ID is required", ErrInvalidInput)
	}
	if err := record.Validate(); err != nil {
		s.logger.Warn("record validation failed during update",
			"error", err,
			"record_id", record.ID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.recordStore.Update(ctx, record)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			s.logger.Debug("record not found during update", "record_id", record.ID)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("failed to update record",
			"error", err,
			"record_id", record.ID)
		return nil, NewServiceError("update_record", "failed to update record", err)
	}

	s.logger.Info("record updated successfully",
		"record_id", stored.ID,
		"user_id", stored.UserID)

	return stored, nil
}

// Delete removes the record and returns its prior value.
func (s *recordServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	record, err := s.recordStore.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			s.logger.Debug("record not found during delete", "record_id", id)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("failed to delete record",
			"error", err,
			"record_id", id)
		return nil, NewServiceError("delete_record", "failed to delete record", err)
	}

	s.logger.Info("record deleted successfully",
		"record_id", id,
		"user_id", record.UserID)

	return record, nil
}
