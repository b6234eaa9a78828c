package repository

import "errors"

// Sentinel errors translated by the handler layer into HTTP status codes.
var (
	ErrNotFound = errors.New("not found")
)
