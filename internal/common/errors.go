// Package common defines shared constants and sentinel errors used across
// the client layers of StreamTube. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptyToken   = errors.New("empty token")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
