package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chwebb02/webDevBudgetBot/internal/api"
	apiMiddleware "github.com/chwebb02/webDevBudgetBot/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Route registration is an explicit dispatch table from
// (verb, path pattern) to handler, injected with the services; substituting
// fake services is all a router test needs.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORS)

	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	transactionHandler := api.NewRecordHandler(app.transactionService, app.logger)
	budgetItemHandler := api.NewRecordHandler(app.budgetItemService, app.logger)

	// Account endpoints
	r.Post("/user/register", accountHandler.Register)
	r.Post("/user/login", accountHandler.Login)

	// Transaction endpoints
	r.Post("/transaction/create", transactionHandler.Create)
	r.Get("/user/{userID}/transactions", transactionHandler.ListByUser)
	r.Get("/transaction/{recordID}", transactionHandler.GetByID)
	r.Put("/transaction", transactionHandler.Update)
	r.Delete("/transaction/{recordID}", transactionHandler.Delete)

	// Budget item endpoints
	r.Post("/budgetItem/create", budgetItemHandler.Create)
	r.Get("/user/{userID}/budgetItems", budgetItemHandler.ListByUser)
	r.Get("/budgetItem/{recordID}", budgetItemHandler.GetByID)
	r.Put("/budgetItem", budgetItemHandler.Update)
	r.Delete("/budgetItem/{recordID}", budgetItemHandler.Delete)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
