// Package tasks persists task records. Every operation is scoped to the
// owning user: a task that exists but belongs to someone else behaves
// exactly like a task that does not exist.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Select(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error)
	GetByID(ctx context.Context, userID, id string) (*models.Task, error)
	UpdateStatus(ctx context.Context, userID, id string, status models.TaskStatus) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}
