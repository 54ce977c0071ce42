package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/arrazka/lifeboard/internal/models"
)

// TaskRepository provides database operations for tasks
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask creates a new task
func (r *TaskRepository) CreateTask(ctx context.Context, t *models.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, due_date, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, t.ID, t.UserID, t.Title, t.DueDate, t.Done).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// ListTasks returns all tasks owned by a user, open ones first
func (r *TaskRepository) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `
		SELECT id, user_id, title, due_date, done, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY done, due_date NULLS LAST, created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.DueDate, &t.Done, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// SetTaskDone updates the done flag
func (r *TaskRepository) SetTaskDone(ctx context.Context, userID int64, id uuid.UUID, done bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET done = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND user_id = $3`,
		done, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check task update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

// DeleteTask removes a task owned by the user
func (r *TaskRepository) DeleteTask(ctx context.Context, userID int64, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check task delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}
