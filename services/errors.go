package services

import "errors"

var (
	// ErrNotFound maps to HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized maps to HTTP 401 (missing identity or ownership mismatch).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmailTaken maps to HTTP 409 on registration.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError carries the first input violation found; handlers surface
// its message with a 400 status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}
