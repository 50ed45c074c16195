package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// station does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned by the store when an id is not a well-formed
// station identifier. It is kept distinct from ErrNotFound so callers can
// tell the two apart in logs, but handlers map both to HTTP 404.
var ErrInvalidID = errors.New("invalid station id")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, non-finite frequency).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ValidationMarker is the text ErrValidation contributes to a wrapped
// error chain. Handlers strip everything up to it to build client messages.
const ValidationMarker = "validation error: "
