package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chwebb02/webDevBudgetBot/internal/mocks"
	"github.com/chwebb02/webDevBudgetBot/internal/store"
)

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when the function succeeds", func(t *testing.T) {
		db := mocks.NewStubDB()
		defer db.Close()

		called := false
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			called = true
			require.NotNil(t, tx)
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("rolls back and returns the function's error", func(t *testing.T) {
		db := mocks.NewStubDB()
		defer db.Close()

		cause := errors.New("insert failed")
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return cause
		})

		assert.ErrorIs(t, err, cause)
	})

	t.Run("re-panics after rolling back", func(t *testing.T) {
		db := mocks.NewStubDB()
		defer db.Close()

		assert.Panics(t, func() {
			_ = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
				panic("boom")
			})
		})
	})
}
