package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when an insert violates the
	// unique constraint on users.username.
	ErrDuplicateUsername = errors.New("username already exists")
)
