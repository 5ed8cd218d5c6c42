package domain

import "errors"

// Sentinel errors shared across repositories and services.
// Controllers map these to HTTP status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateSlug = errors.New("slug already in use")
)
