package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/dmitrijs2005/taskvault/internal/server/repositories/tasks"
	"github.com/google/uuid"
)

// TaskService exposes the task operations, each scoped to the authenticated
// user whose ID the dispatcher extracted from the session token.
type TaskService struct {
	tasks tasks.Repository
}

// NewTaskService constructs a TaskService over the given repository.
func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{tasks: repo}
}

// Create stores a new task owned by userID with status OPEN.
func (s *TaskService) Create(ctx context.Context, userID, title, description string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorEmptyTaskTitle
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.StatusOpen,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return created, nil
}

// List returns the user's tasks, narrowed by the optional filter.
func (s *TaskService) List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
	result, err := s.tasks.Select(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error selecting tasks: %w", err)
	}
	return result, nil
}

// GetByID returns the task if it exists and belongs to userID; otherwise
// common.ErrorNotFound.
func (s *TaskService) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, userID, id)
}

// UpdateStatus sets the task's status. Any status may replace any other.
func (s *TaskService) UpdateStatus(ctx context.Context, userID, id string, status models.TaskStatus) (*models.Task, error) {
	return s.tasks.UpdateStatus(ctx, userID, id, status)
}

// Delete removes the task, again scoped to userID.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.tasks.Delete(ctx, userID, id)
}
