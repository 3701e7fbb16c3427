package database

import "errors"

var (
	// ErrNotFound is returned when a user, post or comment does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when registering a username that is
	// already taken (unique constraint on users.username).
	ErrDuplicateUsername = errors.New("username already registered")
)
