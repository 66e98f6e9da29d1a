// Package identity defines the boundary to the external identity backend:
// the opaque session handle, the live auth event stream, and the Backend
// interface the session controller consumes. The backend itself (credential
// verification, token issuance) is not part of this module.
package identity

import (
	"context"
	"time"
)

// EventType tags a live auth event from the identity backend.
type EventType string

const (
	EventInitialSession EventType = "INITIAL_SESSION"
	EventSignedIn       EventType = "SIGNED_IN"
	EventSignedOut      EventType = "SIGNED_OUT"
	EventTokenRefreshed EventType = "TOKEN_REFRESHED"
)

// Session is a reference into the identity backend's token. This module
// holds the latest one it was handed and treats the tokens as opaque.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Event is a single notification from the backend's live auth stream.
// Session is nil for SIGNED_OUT events.
type Event struct {
	Type    EventType
	Session *Session
}

// Backend is the identity provider as seen by the session controller.
//
// Contract:
//   - CurrentSession returns (nil, nil) when no session is established.
//   - SignInWithPassword returns common.ErrInvalidCredentials on rejection.
//   - SignOut is expected to be called even when the backend is unreachable;
//     implementations must drop local token state regardless of the result.
//   - Events returns the live auth event channel; no events are delivered
//     after Close.
//
// All methods must honor context cancellation/timeouts.
type Backend interface {
	CurrentSession(ctx context.Context) (*Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	Events() <-chan Event
	Close() error
}
