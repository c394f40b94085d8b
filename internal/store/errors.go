package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness
// constraint. The database, not the application, is the final arbiter
// of id uniqueness.
var ErrDuplicate = errors.New("duplicate record")
