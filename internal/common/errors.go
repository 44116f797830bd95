// Package common defines shared constants and sentinel errors used across
// the layers of the todolist backend. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Account-specific errors.
	ErrorUsernameTaken      = errors.New("username already exists")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Auth errors (invalid, malformed or missing token).
	ErrInvalidToken = errors.New("invalid token")
)
