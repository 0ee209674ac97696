// Package common defines shared constants and sentinel errors used across
// TaskVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorUsernameTaken = errors.New("username already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Validation errors.
	ErrorInvalidStatus  = errors.New("invalid task status")
	ErrorEmptyTaskTitle = errors.New("task title must not be empty")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMalformedToken   = errors.New("malformed token")

	// Password digest errors.
	ErrMalformedDigest = errors.New("malformed password digest")
)
