package repository

import (
	"context"

	"notehub/internal/model"
)

// TaskRepository defines data access for calendar tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *model.Task) (*model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)
	ListByFolder(ctx context.Context, folderID string) ([]model.Task, error)

	// Update replaces text, dates, completion flag and color.
	Update(ctx context.Context, t *model.Task) (*model.Task, error)

	Delete(ctx context.Context, id string) error
}
