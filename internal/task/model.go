package task

import "time"

const (
	// StatusPending is the status every task is created with.
	StatusPending = "pending"
	// StatusCompleted is the usual terminal status. The set of legal
	// values is open; handlers accept any non-empty status.
	StatusCompleted = "completed"
)

// Task is an owner-scoped record: every read and write of one is
// filtered by UserID, which is never taken from the request body.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
