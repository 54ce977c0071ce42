package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a simple to-do item
type Task struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int64      `json:"user_id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
