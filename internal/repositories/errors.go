package repositories

import "errors"

// ErrNotFound is returned when no record matches the identifier.
var ErrNotFound = errors.New("record not found")
