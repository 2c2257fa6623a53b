package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chwebb02/webDevBudgetBot/internal/domain"
	"github.com/chwebb02/webDevBudgetBot/internal/mocks"
	"github.com/chwebb02/webDevBudgetBot/internal/service"
)

func newRecordService(kind domain.RecordKind) (service.RecordService, *mocks.MockRecordStore) {
	recordStore := mocks.NewMockRecordStore(kind)
	return service.NewRecordService(recordStore, testLogger()), recordStore
}

func TestRecordService_Kind(t *testing.T) {
	transactionService, _ := newRecordService(domain.KindTransaction)
	budgetItemService, _ := newRecordService(domain.KindBudgetItem)

	assert.Equal(t, domain.KindTransaction, transactionService.Kind())
	assert.Equal(t, domain.KindBudgetItem, budgetItemService.Kind())
}

func TestRecordService_Create(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("create assigns an id and stores the record", func(t *testing.T) {
		recordService, recordStore := newRecordService(domain.KindTransaction)

		stored, err := recordService.Create(ctx, &domain.Record{
			UserID:      owner,
			Amount:      -12.99,
			Category:    "groceries",
			Description: "weekly shop",
			OccurredAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, stored.ID)
		assert.Equal(t, owner, stored.UserID)
		assert.Equal(t, -12.99, stored.Amount)
		assert.Len(t, recordStore.Records, 1)
	})

	t.Run("create ignores any incoming id", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)
		incomingID := uuid.New()

		stored, err := recordService.Create(ctx, &domain.Record{
			ID:     incomingID,
			UserID: owner,
			Amount: 5,
		})

		require.NoError(t, err)
		assert.NotEqual(t, incomingID, stored.ID)
	})

	t.Run("nil record fails with invalid input", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		_, err := recordService.Create(ctx, nil)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("missing owner fails with invalid input", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		_, err := recordService.Create(ctx, &domain.Record{Amount: 5})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("store failure surfaces as internal error", func(t *testing.T) {
		recordService, recordStore := newRecordService(domain.KindTransaction)
		recordStore.CreateFn = func(ctx context.Context, record *domain.Record) error {
			return errors.New("connection refused")
		}

		_, err := recordService.Create(ctx, &domain.Record{UserID: owner, Amount: 5})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInternal)
	})
}

func TestRecordService_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("returns the stored record", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		created, err := recordService.Create(ctx, &domain.Record{UserID: owner, Amount: 7.5})
		require.NoError(t, err)

		fetched, err := recordService.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Amount, fetched.Amount)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		_, err := recordService.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrRecordNotFound)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestRecordService_ListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the owner's records", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)
		alice := uuid.New()
		bob := uuid.New()

		for i := 0; i < 3; i++ {
			_, err := recordService.Create(ctx, &domain.Record{UserID: alice, Amount: float64(i)})
			require.NoError(t, err)
		}
		_, err := recordService.Create(ctx, &domain.Record{UserID: bob, Amount: 99})
		require.NoError(t, err)

		records, err := recordService.ListByUser(ctx, alice)
		require.NoError(t, err)
		assert.Len(t, records, 3)
		for _, record := range records {
			assert.Equal(t, alice, record.UserID)
		}
	})

	t.Run("user with no records gets an empty slice", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		records, err := recordService.ListByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("store failure surfaces as internal error", func(t *testing.T) {
		recordService, recordStore := newRecordService(domain.KindTransaction)
		recordStore.ListByUserFn = func(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error) {
			return nil, errors.New("connection refused")
		}

		_, err := recordService.ListByUser(ctx, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInternal)
	})
}

func TestRecordService_Update(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("update replaces mutable fields and preserves ownership", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		created, err := recordService.Create(ctx, &domain.Record{
			UserID:   owner,
			Amount:   10,
			Category: "groceries",
		})
		require.NoError(t, err)

		updated, err := recordService.Update(ctx, &domain.Record{
			ID:          created.ID,
			UserID:      uuid.New(), // attempted owner change is ignored
			Amount:      20,
			Category:    "dining",
			Description: "dinner out",
			OccurredAt:  created.OccurredAt,
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, owner, updated.UserID)
		assert.Equal(t, 20.0, updated.Amount)
		assert.Equal(t, "dining", updated.Category)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		_, err := recordService.Update(ctx, &domain.Record{
			ID:     uuid.New(),
			UserID: owner,
			Amount: 1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrRecordNotFound)
	})

	t.Run("missing id fails with invalid input", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindTransaction)

		_, err := recordService.Update(ctx, &domain.Record{UserID: owner, Amount: 1})
		assert.ErrorIs(t, err, service.ErrInvalidInput)

		_, err = recordService.Update(ctx, nil)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestRecordService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("delete returns the prior record", func(t *testing.T) {
		recordService, recordStore := newRecordService(domain.KindBudgetItem)

		created, err := recordService.Create(ctx, &domain.Record{
			UserID:   owner,
			Amount:   150,
			Category: "rent",
		})
		require.NoError(t, err)

		deleted, err := recordService.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Equal(t, 150.0, deleted.Amount)
		assert.Empty(t, recordStore.Records)
	})

	t.Run("deleting twice fails with not found", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindBudgetItem)

		created, err := recordService.Create(ctx, &domain.Record{UserID: owner, Amount: 1})
		require.NoError(t, err)

		_, err = recordService.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = recordService.Delete(ctx, created.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrRecordNotFound)
	})

	t.Run("get after delete fails with not found", func(t *testing.T) {
		recordService, _ := newRecordService(domain.KindBudgetItem)

		created, err := recordService.Create(ctx, &domain.Record{UserID: owner, Amount: 1})
		require.NoError(t, err)

		_, err = recordService.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = recordService.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, service.ErrRecordNotFound)
	})
}
