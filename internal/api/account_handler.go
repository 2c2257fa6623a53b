package api

import (
	"log/slog"
	"net/http"

	"github.com/chwebb02/webDevBudgetBot/internal/api/shared"
	"github.com/chwebb02/webDevBudgetBot/internal/platform/logger"
	"github.com/chwebb02/webDevBudgetBot/internal/service"
)

// AccountHandler handles registration and login requests.
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	if accountService == nil {
		panic("accountService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountHandler{
		accountService: accountService,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// Register handles POST /user/register requests.
// On success it returns 200 with the new user's ID.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Absent fields are the gateway's 400, before the service is invoked.
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	userID, err := h.accountService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("user registered", slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{UserID: userID})
}

// Login handles POST /user/login requests.
// On success it returns 200 with the existing user's ID.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	userID, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("user logged in", slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{UserID: userID})
}
