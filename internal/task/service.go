package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid task input")
	ErrNotFound     = errors.New("task not found")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the input before touching storage: an empty title or
// an unparsable due date never results in a write. New tasks always
// start pending.
func (s *Service) Create(
	ctx context.Context,
	userID string,
	title string,
	description string,
	dueDate string,
) (Task, error) {

	if strings.TrimSpace(title) == "" {
		return Task{}, ErrInvalidInput
	}

	due, err := time.Parse(time.RFC3339, dueDate)
	if err != nil {
		return Task{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	t := Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		DueDate:     due,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, t); err != nil {
		return Task{}, fmt.Errorf("task: create: %w", err)
	}

	return t, nil
}

// ListForOwner returns the identity's tasks in insertion order.
func (s *Service) ListForOwner(ctx context.Context, userID string) ([]Task, error) {
	tasks, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("task: list: %w", err)
	}

	return tasks, nil
}

// UpdateStatus changes a task's status on behalf of its owner. A task
// owned by someone else reports ErrNotFound exactly like a task that
// does not exist, so existence never leaks across users.
func (s *Service) UpdateStatus(
	ctx context.Context,
	userID string,
	taskID string,
	status string,
) (Task, error) {

	if strings.TrimSpace(status) == "" {
		return Task{}, ErrInvalidInput
	}

	t, err := s.store.UpdateStatus(ctx, userID, taskID, status)
	if err != nil {
		return Task{}, fmt.Errorf("task: update status: %w", err)
	}
	if t == nil {
		return Task{}, ErrNotFound
	}

	return *t, nil
}
