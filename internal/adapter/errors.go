package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. Each one maps
// a response status class so callers can branch with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrEmptyAddress        = errors.New("empty address")
)
