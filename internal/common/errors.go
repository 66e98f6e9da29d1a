// Package common defines shared constants and sentinel errors used across
// authkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Identity backend errors.
	ErrUnavailable        = errors.New("identity backend unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Session controller errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInitTimeout      = errors.New("initialization timed out")
	ErrClosed           = errors.New("controller closed")

	// Profile resolution errors.
	ErrProfileUnavailable = errors.New("profile unavailable")

	// Quota errors.
	ErrLimitExceeded = errors.New("daily limit exceeded")
)
