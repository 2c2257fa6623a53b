package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	validUsername := "alice"
	validPassword := "correct horse battery staple"

	user, err := NewUser(validUsername, validPassword)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Username != validUsername {
		t.Errorf("Expected username %s, got %s", validUsername, user.Username)
	}

	if user.Password != validPassword {
		t.Errorf("Expected password %s, got %s", validPassword, user.Password)
	}

	if user.HashedPassword != "" {
		t.Error("Expected no hashed password before hashing")
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid username
	_, err = NewUser("", validPassword)
	if err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	_, err = NewUser(strings.Repeat("a", MaxUsernameLength+1), validPassword)
	if err != ErrUsernameTooLong {
		t.Errorf("Expected error %v, got %v", ErrUsernameTooLong, err)
	}

	// Test invalid password
	_, err = NewUser(validUsername, "")
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}

	_, err = NewUser(validUsername, strings.Repeat("p", MaxPasswordLength+1))
	if err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}
}

func TestUserValidate(t *testing.T) {
	// A user loaded from the store carries only the hashed credential.
	validUser := User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}

	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	invalidUser = validUser
	invalidUser.Username = ""
	if err := invalidUser.Validate(); err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	lower, err := NewUser("alice", "pw1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	upper, err := NewUser("Alice", "pw1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if lower.Username == upper.Username {
		t.Error("Expected usernames differing in case to remain distinct")
	}
}
