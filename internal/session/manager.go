package session

import (
	"context"
	"fmt"
	"time"
)

// Manager owns the session lifecycle: it issues tokens, resolves them
// back to identities, and revokes them. Per user the states are
// NoSession -> ActiveSession -> (Expired | Superseded) -> back again;
// only Issue and the lazy delete inside Validate move between them.
type Manager struct {
	store    Store
	duration time.Duration
}

func NewManager(store Store, duration time.Duration) *Manager {
	return &Manager{
		store:    store,
		duration: duration,
	}
}

// Issue creates a fresh session for the user and atomically supersedes
// any session that user already had: the prior token stops resolving
// the moment Issue returns, regardless of its wall-clock expiry.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	s := Session{
		SessionID: id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.duration),
	}

	if err := m.store.Replace(ctx, s); err != nil {
		return "", fmt.Errorf("session: issue: %w", err)
	}

	return id, nil
}

// Validate resolves a token to its owning user. An expired record is
// deleted on first observation. Validation never extends the window:
// sessions are fixed-window, not sliding.
func (m *Manager) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return "", fmt.Errorf("session: validate: %w", err)
	}
	if s == nil {
		return "", ErrNoSession
	}

	if !time.Now().Before(s.ExpiresAt) {
		if err := m.store.Delete(ctx, s.SessionID, s.UserID); err != nil {
			return "", fmt.Errorf("session: expire: %w", err)
		}
		return "", ErrNoSession
	}

	return s.UserID, nil
}

// Revoke removes the session behind token if it exists. Revoking an
// unknown token is a no-op.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	s, err := m.store.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("session: revoke: %w", err)
	}
	if s == nil {
		return nil
	}

	if err := m.store.Delete(ctx, s.SessionID, s.UserID); err != nil {
		return fmt.Errorf("session: revoke: %w", err)
	}

	return nil
}
