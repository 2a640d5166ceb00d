package credentials

import "context"

// Store defines how user records are persisted and retrieved.
// Lookup misses return (nil, nil) so callers can distinguish "no such
// user" from a storage failure.
type Store interface {
	// CreateUser persists a new record. A colliding email reports
	// ErrDuplicateEmail even when the caller's earlier lookup missed,
	// so a registration that loses a race still fails cleanly.
	CreateUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
