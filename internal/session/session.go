// Package session implements server-side cookie sessions.
//
// A session is a small server-side record keyed by an opaque identifier that
// travels in a signed cookie. Sessions are created on successful
// authentication, refreshed with a sliding TTL on later requests, and
// destroyed on logout or expiry.
//
// Two [Store] implementations are provided: a Redis-backed store for
// deployments with more than one server instance, and an in-memory store for
// tests and single-node setups.
package session

import (
	"context"
	"time"
)

// Session represents an authenticated user session.
// It intentionally stores only identity pointers, not auth state.
type Session struct {
	// SessionID is the opaque unique identifier of the session.
	SessionID string `json:"session_id"`

	// UserID references the authenticated user.
	UserID string `json:"user_id"`

	// ExpiresAt is the absolute expiry time. Refreshed on each request.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved. Implementations must
// be safe for concurrent use; Get on an unknown or expired identifier
// returns (nil, nil).
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
