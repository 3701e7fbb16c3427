package services

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when an authenticated user is neither the
	// resource owner nor an admin.
	ErrForbidden = errors.New("not authorized")
)
