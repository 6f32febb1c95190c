package types

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// The HTTP layer maps these to status codes in exactly one place
// (api.StatusFromError); everything below it only wraps them.
var (
	ErrNotFound        = errors.New("requested item not found")
	ErrConflict        = errors.New("item already exists or conflict")
	ErrUnauthenticated = errors.New("authentication required or invalid credentials")
	ErrValidation      = errors.New("invalid request payload")
	ErrInternal        = errors.New("internal error")
)
