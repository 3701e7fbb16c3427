package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"Plank/database"
	"Plank/models"
)

type AuthService struct {
	store UserStore
}

func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// Register hashes the password and persists a new non-admin identity.
// A taken username is reported as database.ErrDuplicateUsername.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.CreateUser(username, string(hashedPassword), false)
}

// Authenticate resolves credentials to an identity. Unknown usernames and
// wrong passwords both come back as ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.store.UserByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
