package services

import "errors"

// ErrValidation marks a request rejected before any mutation took
// place (empty cart, missing selection, malformed enum value).
var ErrValidation = errors.New("validation failed")
