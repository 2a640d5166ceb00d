package task

import "context"

// Store defines the data-access contract for tasks. Every method takes
// the owner's user ID; implementations must scope each statement by it.
type Store interface {
	Create(ctx context.Context, t Task) error
	ListByOwner(ctx context.Context, userID string) ([]Task, error)

	// UpdateStatus returns (nil, nil) when no task with that ID is
	// owned by userID; a missing row and someone else's row are
	// indistinguishable by construction.
	UpdateStatus(ctx context.Context, userID, taskID, status string) (*Task, error)
}
