package storage

import "errors"

// Common storage errors
var (
	// ErrNotFound indicates that the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a unique constraint violation
	// (email for users, user UUID for refresh tokens, owner for webhooks)
	ErrAlreadyExists = errors.New("record already exists")

	// ErrInvalidID indicates that the id could not be parsed or has the wrong format
	ErrInvalidID = errors.New("invalid id")

	// ErrVersionConflict indicates that the budget was changed since it was read
	ErrVersionConflict = errors.New("version conflict")
)
