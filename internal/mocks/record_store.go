package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chwebb02/webDevBudgetBot/internal/domain"
	"github.com/chwebb02/webDevBudgetBot/internal/store"
)

// MockRecordStore implements store.RecordStore for testing.
// The default implementation keeps records in a map keyed by ID; function
// fields override individual methods when a test needs specific behavior.
type MockRecordStore struct {
	mu sync.Mutex

	// RecordKind reported by Kind; defaults to domain.KindTransaction.
	RecordKind domain.RecordKind

	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, record *domain.Record) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error)
	UpdateFn     func(ctx context.Context, record *domain.Record) (*domain.Record, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) (*domain.Record, error)

	// Data for default implementation
	Records map[uuid.UUID]*domain.Record
}

// NewMockRecordStore creates a new mock store with initialized defaults.
func NewMockRecordStore(kind domain.RecordKind) *MockRecordStore {
	if kind == "" {
		kind = domain.KindTransaction
	}
	return &MockRecordStore{
		RecordKind: kind,
		Records:    make(map[uuid.UUID]*domain.Record),
	}
}

// Ensure MockRecordStore implements store.RecordStore interface
var _ store.RecordStore = (*MockRecordStore)(nil)

// Kind implements the RecordStore interface.
func (m *MockRecordStore) Kind() domain.RecordKind {
	return m.RecordKind
}

// Create implements the RecordStore interface.
func (m *MockRecordStore) Create(ctx context.Context, record *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, record)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	m.Records[record.ID] = &copied
	return nil
}

// GetByID implements the RecordStore interface.
func (m *MockRecordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.Records[id]
	if !exists {
		return nil, store.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

// ListByUser implements the RecordStore interface.
// Records come back ordered by occurrence time to mirror the real store.
func (m *MockRecordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]*domain.Record, 0)
	for _, record := range m.Records {
		if record.UserID == userID {
			copied := *record
			records = append(records, &copied)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].OccurredAt.Before(records[j].OccurredAt)
	})
	return records, nil
}

// Update implements the RecordStore interface. It preserves the stored
// record's owner and creation timestamp, like the real store.
func (m *MockRecordStore) Update(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, record)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Records[record.ID]
	if !exists {
		return nil, store.ErrRecordNotFound
	}

	updated := *record
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	m.Records[record.ID] = &updated

	copied := updated
	return &copied, nil
}

// Delete implements the RecordStore interface.
func (m *MockRecordStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.Records[id]
	if !exists {
		return nil, store.ErrRecordNotFound
	}
	delete(m.Records, id)
	return record, nil
}

// WithTx implements the RecordStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockRecordStore) WithTx(tx *sql.Tx) store.RecordStore {
	return m
}
