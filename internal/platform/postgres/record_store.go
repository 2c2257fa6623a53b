package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chwebb02/webDevBudgetBot/internal/domain"
	"github.com/chwebb02/webDevBudgetBot/internal/platform/logger"
	"github.com/chwebb02/webDevBudgetBot/internal/store"
)

// PostgresRecordStore implements the store.RecordStore interface using a
// PostgreSQL database as the storage backend. One implementation serves both
// record kinds; the kind fixes the table at construction time. Table names
// are compile-time constants, never caller input.
type PostgresRecordStore struct {
	db     store.DBTX
	kind   domain.RecordKind
	table  string
	logger *slog.Logger
}

// NewPostgresTransactionStore creates the RecordStore for transactions.
func NewPostgresTransactionStore(db store.DBTX, logger *slog.Logger) *PostgresRecordStore {
	return newPostgresRecordStore(db, domain.KindTransaction, "transactions", logger)
}

// NewPostgresBudgetItemStore creates the RecordStore for budget items.
func NewPostgresBudgetItemStore(db store.DBTX, logger *slog.Logger) *PostgresRecordStore {
	return newPostgresRecordStore(db, domain.KindBudgetItem, "budget_items", logger)
}

func newPostgresRecordStore(
	db store.DBTX,
	kind domain.RecordKind,
	table string,
	logger *slog.Logger,
) *PostgresRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRecordStore{
		db:    db,
		kind:  kind,
		table: table,
		logger: logger.With(
			slog.String("component", "record_store"),
			slog.String("kind", string(kind))),
	}
}

// Ensure PostgresRecordStore implements store.RecordStore interface
var _ store.RecordStore = (*PostgresRecordStore)(nil)

// Kind implements store.RecordStore.Kind
func (s *PostgresRecordStore) Kind() domain.RecordKind {
	return s.kind
}

// Create implements store.RecordStore.Create
// It saves a new record to the table for this store's kind.
// Returns validation errors from the domain Record if data is invalid.
func (s *PostgresRecordStore) Create(ctx context.Context, record *domain.Record) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	query := `
		INSERT INTO ` + s.table + ` (id, user_id, amount, category, description, occurred_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.Amount,
		record.Category,
		record.Description,
		record.OccurredAt,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("user_id", record.UserID.String()))
		return store.NewStoreError(string(s.kind), "create", "insert failed", err)
	}

	log.Info("record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()))
	return nil
}

// GetByID implements store.RecordStore.GetByID
// Returns store.ErrRecordNotFound if the record does not exist.
func (s *PostgresRecordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, amount, category, description, occurred_at, created_at, updated_at
		FROM ` + s.table + `
		WHERE id = $1
	`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("record not found", slog.String("record_id", id.String()))
			return nil, store.ErrRecordNotFound
		}
		log.Error("failed to get record by ID",
			slog.String("error", err.Error()),
			slog.String("record_id", id.String()))
		return nil, store.NewStoreError(string(s.kind), "get_by_id", "query failed", err)
	}

	return record, nil
}

// ListByUser implements store.RecordStore.ListByUser
// Records come back oldest-first by occurrence time. A user with no records
// yields an empty slice, not an error.
func (s *PostgresRecordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, amount, category, description, occurred_at, created_at, updated_at
		FROM ` + s.table + `
		WHERE user_id = $1
		ORDER BY occurred_at, created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list records for user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError(string(s.kind), "list_by_user", "query failed", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	records := make([]*domain.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			log.Error("failed to scan record row",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, store.NewStoreError(string(s.kind), "list_by_user", "scan failed", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		log.Error("row iteration failed",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError(string(s.kind), "list_by_user", "iteration failed", err)
	}

	return records, nil
}

// Update implements store.RecordStore.Update
// It replaces the mutable fields of the stored record in a single statement
// and returns the stored form. The owner and creation timestamp never change.
// Returns store.ErrRecordNotFound if the record does not exist; a failed
// update creates nothing.
func (s *PostgresRecordStore) Update(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE ` + s.table + `
		SET amount = $1, category = $2, description = $3, occurred_at = $4, updated_at = $5
		WHERE id = $6
		RETURNING id, user_id, amount, category, description, occurred_at, created_at, updated_at
	`

	updated, err := scanRecord(s.db.QueryRowContext(
		ctx,
		query,
		record.Amount,
		record.Category,
		record.Description,
		record.OccurredAt,
		time.Now().UTC(),
		record.ID,
	))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("record not found during update", slog.String("record_id", record.ID.String()))
			return nil, store.ErrRecordNotFound
		}
		log.Error("failed to update record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return nil, store.NewStoreError(string(s.kind), "update", "update failed", err)
	}

	log.Info("record updated successfully",
		slog.String("record_id", updated.ID.String()),
		slog.String("user_id", updated.UserID.String()))
	return updated, nil
}

// Delete implements store.RecordStore.Delete
// It removes the record in a single statement and returns its prior value.
// Returns store.ErrRecordNotFound if the record does not exist, so a second
// delete of the same ID fails deterministically.
func (s *PostgresRecordStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM ` + s.table + `
		WHERE id = $1
		RETURNING id, user_id, amount, category, description, occurred_at, created_at, updated_at
	`

	deleted, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("record not found during delete", slog.String("record_id", id.String()))
			return nil, store.ErrRecordNotFound
		}
		log.Error("failed to delete record",
			slog.String("error", err.Error()),
			slog.String("record_id", id.String()))
		return nil, store.NewStoreError(string(s.kind), "delete", "delete failed", err)
	}

	log.Info("record deleted successfully",
		slog.String("record_id", id.String()),
		slog.String("user_id", deleted.UserID.String()))
	return deleted, nil
}

// WithTx implements store.RecordStore.WithTx
// It returns a new store bound to the given transaction.
func (s *PostgresRecordStore) WithTx(tx *sql.Tx) store.RecordStore {
	return &PostgresRecordStore{
		db:     tx,
		kind:   s.kind,
		table:  s.table,
		logger: s.logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.Record, error) {
	var record domain.Record
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Amount,
		&record.Category,
		&record.Description,
		&record.OccurredAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
