package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned by the Manager when a token does not resolve
// to a live session, for any reason (never issued, revoked, superseded,
// or expired). Callers are not told which.
var ErrNoSession = errors.New("no session")

// Session represents an authenticated user session.
// It intentionally stores only identity pointers, not auth state.
type Session struct {
	SessionID string    // unique opaque token
	UserID    string    // references users.id
	CreatedAt time.Time // issue time
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved. Implementations
// must keep the single-session-per-user invariant: Replace atomically
// removes whatever session the user had before, so no validator can
// observe two live sessions for one user.
type Store interface {
	Replace(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID, userID string) error
}
