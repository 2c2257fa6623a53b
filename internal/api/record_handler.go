package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/chwebb02/webDevBudgetBot/internal/api/shared"
	"github.com/chwebb02/webDevBudgetBot/internal/domain"
	"github.com/chwebb02/webDevBudgetBot/internal/platform/logger"
	"github.com/chwebb02/webDevBudgetBot/internal/service"
)

// RecordHandler handles CRUD requests for one record kind. The router mounts
// two instances of it, one over the transaction service and one over the
// budget item service; the handler itself is kind-agnostic.
type RecordHandler struct {
	recordService service.RecordService
	logger        *slog.Logger
}

// NewRecordHandler creates a new RecordHandler over the given service.
func NewRecordHandler(recordService service.RecordService, logger *slog.Logger) *RecordHandler {
	if recordService == nil {
		panic("recordService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RecordHandler{
		recordService: recordService,
		logger: logger.With(
			slog.String("component", "record_handler"),
			slog.String("kind", string(recordService.Kind()))),
	}
}

// Create handles POST /transaction/create and /budgetItem/create requests.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Malformed request")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Malformed request")
		return
	}

	// The uuid tag above guarantees this parse succeeds.
	userID := uuid.MustParse(req.UserID)

	record, err := h.recordService.Create(r.Context(), &domain.Record{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("record created",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// ListByUser handles GET /user/{userID}/transactions and
// /user/{userID}/budgetItems requests. A user with no records gets an empty
// array, never an error.
func (h *RecordHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathUUID(r, "userID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Malformed request")
		return
	}

	records, err := h.recordService.ListByUser(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("records listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(records)))
	shared.RespondWithJSON(w, r, http.StatusOK, recordsToResponse(records))
}

// GetByID handles GET /transaction/{recordID} and /budgetItem/{recordID}
// requests.
func (h *RecordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	recordID, err := getPathUUID(r, "recordID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Malformed request")
		return
	}

	record, err := h.recordService.GetByID(r.Context(), recordID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// Update handles PUT /transaction and PUT /budgetItem requests.
// The body carries the full record; the stored record is replaced wholesale.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UpdateRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Malformed request")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Malformed request")
		return
	}

	record, err := h.recordService.Update(r.Context(), &domain.Record{
		ID:          uuid.MustParse(req.ID),
		UserID:      uuid.MustParse(req.UserID),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("record updated", slog.String("record_id", record.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// Delete handles DELETE /transaction/{recordID} and /budgetItem/{recordID}
// requests. The response carries the deleted record's prior value.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	recordID, err := getPathUUID(r, "recordID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Malformed request")
		return
	}

	record, err := h.recordService.Delete(r.Context(), recordID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("record deleted", slog.String("record_id", recordID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}
