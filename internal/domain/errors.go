package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// profile does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a trip configuration cannot be planned
// (missing travel dates or university, malformed date, non-numeric cost) or
// when imported data cannot be decoded.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
