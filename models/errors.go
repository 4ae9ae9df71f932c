package models

import "errors"

// Shared error taxonomy. Handlers translate these into HTTP statuses;
// wrap them with fmt.Errorf("...: %w", Err...) to attach detail.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
)
