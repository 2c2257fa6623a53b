package main

import (
	"database/sql"
	"log/slog"

	"github.com/chwebb02/webDevBudgetBot/internal/config"
	"github.com/chwebb02/webDevBudgetBot/internal/platform/postgres"
	"github.com/chwebb02/webDevBudgetBot/internal/service"
	"github.com/chwebb02/webDevBudgetBot/internal/service/auth"
	"github.com/chwebb02/webDevBudgetBot/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	transactionStore store.RecordStore
	budgetItemStore  store.RecordStore

	// Service interfaces
	passwordHasher     auth.PasswordHasher
	accountService     service.AccountService
	transactionService service.RecordService
	budgetItemService  service.RecordService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.transactionStore = postgres.NewPostgresTransactionStore(db, logger)
	app.budgetItemStore = postgres.NewPostgresBudgetItemStore(db, logger)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.accountService = service.NewAccountService(app.userStore, db, app.passwordHasher, logger)
	app.transactionService = service.NewRecordService(app.transactionStore, logger)
	app.budgetItemService = service.NewRecordService(app.budgetItemStore, logger)

	return app
}
