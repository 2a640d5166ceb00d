package task

import (
	"context"
	"database/sql"

	"task-service/internal/db"
)

// PostgresStore is the canonical Store backed by the tasks table.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, t Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, description, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.DueDate,
		t.Status,
		t.CreatedAt,
		t.UpdatedAt,
	)

	return err
}

func (s *PostgresStore) ListByOwner(ctx context.Context, userID string) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Title,
			&t.Description,
			&t.DueDate,
			&t.Status,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, userID, taskID, status string) (*Task, error) {
	var t Task
	err := s.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, due_date, status, created_at, updated_at
	`, taskID, userID, status).Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}
