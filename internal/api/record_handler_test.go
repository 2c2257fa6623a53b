package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chwebb02/webDevBudgetBot/internal/api"
	"github.com/chwebb02/webDevBudgetBot/internal/domain"
	"github.com/chwebb02/webDevBudgetBot/internal/mocks"
	"github.com/chwebb02/webDevBudgetBot/internal/service"
)

// newRecordRouter mounts the transaction endpoints over a real service backed
// by the given mock store, mirroring the production route table. The budget
// item endpoints share the same handler, so one kind covers both.
func newRecordRouter(recordStore *mocks.MockRecordStore) http.Handler {
	recordService := service.NewRecordService(recordStore, testLogger())
	handler := api.NewRecordHandler(recordService, testLogger())

	r := chi.NewRouter()
	r.Post("/transaction/create", handler.Create)
	r.Get("/user/{userID}/transactions", handler.ListByUser)
	r.Get("/transaction/{recordID}", handler.GetByID)
	r.Put("/transaction", handler.Update)
	r.Delete("/transaction/{recordID}", handler.Delete)
	return r
}

func doRequest(router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return doRequest(router, method, path, payload)
}

func decodeRecordResponse(t *testing.T, rec *httptest.ResponseRecorder) api.RecordResponse {
	t.Helper()

	var resp api.RecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRecordHandler_Create(t *testing.T) {
	owner := uuid.New()

	t.Run("successful create returns 200 with the stored record", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"user_id":     owner.String(),
			"amount":      -12.99,
			"category":    "groceries",
			"description": "weekly shop",
			"occurred_at": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeRecordResponse(t, rec)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, owner, resp.UserID)
		assert.Equal(t, -12.99, resp.Amount)
		assert.Equal(t, "groceries", resp.Category)
		assert.False(t, resp.CreatedAt.IsZero())
	})

	t.Run("non-uuid owner returns 400", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"user_id": "not-a-uuid",
			"amount":  5,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Malformed request", decodeErrorMessage(t, rec))
	})

	t.Run("missing owner returns 400", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"amount": 5,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doRequest(router, http.MethodPost, "/transaction/create", []byte("{not json"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Malformed request", decodeErrorMessage(t, rec))
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		recordStore := mocks.NewMockRecordStore(domain.KindTransaction)
		recordStore.CreateFn = func(ctx context.Context, record *domain.Record) error {
			return errors.New("connection refused")
		}
		router := newRecordRouter(recordStore)

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"user_id": owner.String(),
			"amount":  5,
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An unexpected error occurred", decodeErrorMessage(t, rec))
	})
}

func TestRecordHandler_ListByUser(t *testing.T) {
	t.Run("returns the owner's records", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))
		owner := uuid.New()
		other := uuid.New()

		for _, userID := range []uuid.UUID{owner, owner, other} {
			rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
				"user_id": userID.String(),
				"amount":  1,
			})
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := doRequest(router, http.MethodGet, "/user/"+owner.String()+"/transactions", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []api.RecordResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("user with no records gets an empty array", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doRequest(router, http.MethodGet, "/user/"+uuid.NewString()+"/transactions", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("non-uuid user id returns 400", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doRequest(router, http.MethodGet, "/user/not-a-uuid/transactions", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Malformed request", decodeErrorMessage(t, rec))
	})
}

func TestRecordHandler_GetByID(t *testing.T) {
	t.Run("returns the stored record", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))
		owner := uuid.New()

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"user_id": owner.String(),
			"amount":  7.5,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		created := decodeRecordResponse(t, rec)

		rec = doRequest(router, http.MethodGet, "/transaction/"+created.ID.String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		fetched := decodeRecordResponse(t, rec)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, 7.5, fetched.Amount)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doRequest(router, http.MethodGet, "/transaction/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Record does not exist", decodeErrorMessage(t, rec))
	})

	t.Run("non-uuid id returns 400", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doRequest(router, http.MethodGet, "/transaction/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecordHandler_Update(t *testing.T) {
	t.Run("full replace returns the stored form and keeps the owner", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))
		owner := uuid.New()

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"user_id":  owner.String(),
			"amount":   10,
			"category": "groceries",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		created := decodeRecordResponse(t, rec)

		rec = doJSON(t, router, http.MethodPut, "/transaction", map[string]any{
			"id":       created.ID.String(),
			"user_id":  uuid.NewString(), // attempted owner change is ignored
			"amount":   20,
			"category": "dining",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		updated := decodeRecordResponse(t, rec)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, owner, updated.UserID)
		assert.Equal(t, 20.0, updated.Amount)
		assert.Equal(t, "dining", updated.Category)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doJSON(t, router, http.MethodPut, "/transaction", map[string]any{
			"id":      uuid.NewString(),
			"user_id": uuid.NewString(),
			"amount":  1,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Record does not exist", decodeErrorMessage(t, rec))
	})

	t.Run("missing id returns 400", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doJSON(t, router, http.MethodPut, "/transaction", map[string]any{
			"user_id": uuid.NewString(),
			"amount":  1,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Malformed request", decodeErrorMessage(t, rec))
	})
}

func TestRecordHandler_Delete(t *testing.T) {
	t.Run("delete returns the prior record", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))
		owner := uuid.New()

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"user_id":  owner.String(),
			"amount":   150,
			"category": "rent",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		created := decodeRecordResponse(t, rec)

		rec = doRequest(router, http.MethodDelete, "/transaction/"+created.ID.String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		deleted := decodeRecordResponse(t, rec)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Equal(t, 150.0, deleted.Amount)

		rec = doRequest(router, http.MethodGet, "/transaction/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deleting twice returns 404", func(t *testing.T) {
		router := newRecordRouter(mocks.NewMockRecordStore(domain.KindTransaction))

		rec := doJSON(t, router, http.MethodPost, "/transaction/create", map[string]any{
			"user_id": uuid.NewString(),
			"amount":  1,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		created := decodeRecordResponse(t, rec)

		rec = doRequest(router, http.MethodDelete, "/transaction/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(router, http.MethodDelete, "/transaction/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Record does not exist", decodeErrorMessage(t, rec))
	})
}
