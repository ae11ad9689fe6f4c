package types

import "errors"

// Sentinel errors shared by services and repositories. Handlers map
// them to HTTP statuses in internal/api.
var (
	ErrNotFound        = errors.New("requested item not found")
	ErrConflict        = errors.New("item already exists or conflict")
	ErrUnauthenticated = errors.New("authentication required or invalid credentials")
	ErrValidation      = errors.New("validation failed")
	ErrInternal        = errors.New("internal error")
)
