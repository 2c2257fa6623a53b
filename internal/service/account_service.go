package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chwebb02/webDevBudgetBot/internal/domain"
	"github.com/chwebb02/webDevBudgetBot/internal/service/auth"
	"github.com/chwebb02/webDevBudgetBot/internal/store"
)

// AccountService registers and authenticates users. It owns the uniqueness
// and credential-matching rules; uniqueness itself is enforced by the store's
// constraint rather than a check-then-act sequence, so concurrent
// registrations of the same username fail deterministically.
type AccountService interface {
	// Register creates a new user and returns its assigned ID.
	// Returns ErrInvalidInput if username or password is empty,
	// ErrUsernameExists if the username is already taken.
	Register(ctx context.Context, username, password string) (uuid.UUID, error)

	// Login authenticates a user and returns the existing user's ID.
	// Returns ErrUserNotFound if no user has the given username,
	// ErrBadLogin if the password does not match.
	// No side effects on success or failure.
	Login(ctx context.Context, username, password string) (uuid.UUID, error)
}

// accountServiceImpl implements the AccountService interface.
type accountServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	userStore store.UserStore,
	db *sql.DB,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) AccountService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		userStore: userStore,
		db:        db,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "account_service")),
	}
}

// Register creates a new user with the specified username and password.
// The plaintext password is hashed before the user is persisted; the raw
// value never reaches the store.
func (s *accountServiceImpl) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	// The gateway already rejects absent fields, but the service must not
	// trust its callers on this.
	if username == "" || password == "" {
		return uuid.Nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := domain.NewUser(username, password)
	if err != nil {
		s.logger.Warn("user validation failed during registration",
			"error", err,
			"username", username)
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", username)
		return uuid.Nil, NewServiceError("register", "failed to derive credential", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)
		return txStore.Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				"username", username)
			return uuid.Nil, ErrUsernameExists
		}
		s.logger.Error("failed to save user",
			"error", err,
			"username", username)
		return uuid.Nil, NewServiceError("register", "failed to save user", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"username", username)

	return user.ID, nil
}

// Login authenticates the user by username and password and returns the
// stored user's ID.
func (s *accountServiceImpl) Login(ctx context.Context, username, password string) (uuid.UUID, error) {
	if username == "" || password == "" {
		return uuid.Nil, ErrBadLogin
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown username",
				"username", username)
			return uuid.Nil, ErrUserNotFound
		}
		s.logger.Error("failed to look up user",
			"error", err,
			"username", username)
		return uuid.Nil, NewServiceError("login", "failed to look up user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"user_id", user.ID,
			"username", username)
		return uuid.Nil, ErrBadLogin
	}

	s.logger.Debug("user logged in successfully",
		"user_id", user.ID,
		"username", username)

	return user.ID, nil
}
