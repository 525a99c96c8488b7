// Package common defines shared constants and sentinel errors used across
// the back-office client. Callers should use errors.Is / errors.As to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoToken      = errors.New("no token")
)

// AuthenticationError reports invalid credentials, an expired or invalid
// token, or a 401 from any endpoint. Message is human-readable and safe to
// show to the operator.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

func (e *AuthenticationError) Unwrap() error { return ErrUnauthorized }

// TokenRefreshError reports that the refresh endpoint rejected the current
// token. The session is no longer trustworthy once this is returned.
type TokenRefreshError struct {
	Message string
}

func (e *TokenRefreshError) Error() string { return e.Message }

// OperationError reports a failed CRUD call against a domain resource. It
// carries the server-provided message, or a generic fallback when the
// failure was not API-shaped.
type OperationError struct {
	Message string
}

func (e *OperationError) Error() string { return e.Message }

// UploadError reports that the media upload endpoint did not return a
// usable URL.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string { return e.Message }
