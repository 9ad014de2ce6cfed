package repository

import "errors"

// Sentinel errors returned by repository implementations. Use cases translate them into
// domain errors.
var (
	// ErrProductNotFound is returned when no product matches the given ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrUserNotFound is returned when no user matches the given ID or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a write violates the unique email index.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidID is returned when an identifier is not well-formed for the store.
	ErrInvalidID = errors.New("invalid identifier")
)
