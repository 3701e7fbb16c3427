package services

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"Plank/database"
)

// EnsureAdmin makes sure the bootstrap admin identity exists. Idempotent:
// if the username is already registered nothing changes, admin flag
// included. Run once at startup, after migrations.
func EnsureAdmin(store UserStore, username, password string) error {
	_, err := store.UserByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := store.CreateUser(username, string(hashedPassword), true)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.Info("Seeded admin user", "username", username, "user_id", user.ID)
	return nil
}
