package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
)

// TaskService manages the to-do list
type TaskService struct {
	tasks *repository.TaskRepository
	log   *logrus.Logger
}

func NewTaskService(tasks *repository.TaskRepository, log *logrus.Logger) *TaskService {
	return &TaskService{tasks: tasks, log: log}
}

// CreateTask adds a new task
func (s *TaskService) CreateTask(ctx context.Context, userID int64, title string, dueDate *time.Time) (*models.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	task := &models.Task{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		DueDate: dueDate,
	}
	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks returns the user's tasks
func (s *TaskService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.tasks.ListTasks(ctx, userID)
}

// SetDone toggles a task's done flag
func (s *TaskService) SetDone(ctx context.Context, userID int64, id uuid.UUID, done bool) error {
	return s.tasks.SetTaskDone(ctx, userID, id, done)
}

// DeleteTask removes a task
func (s *TaskService) DeleteTask(ctx context.Context, userID int64, id uuid.UUID) error {
	return s.tasks.DeleteTask(ctx, userID, id)
}
