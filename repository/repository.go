package repository

import "errors"

// ErrNotFound is returned when no entity exists for the requested key.
var ErrNotFound = errors.New("record not found")

// ErrStaleVersion is returned by versioned updates when the row was modified
// concurrently since it was read.
var ErrStaleVersion = errors.New("stale version")
