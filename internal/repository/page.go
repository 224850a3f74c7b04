package repository

import (
	"context"

	"notehub/internal/model"
)

// PageRepository defines data access for notebook pages.
type PageRepository interface {
	Create(ctx context.Context, p *model.Page) (*model.Page, error)
	FindByID(ctx context.Context, id string) (*model.Page, error)
	ListByUser(ctx context.Context, userID string) ([]model.Page, error)
	ListByFolder(ctx context.Context, folderID string) ([]model.Page, error)

	// UpdateContent overwrites the page content in full (last write wins).
	UpdateContent(ctx context.Context, id, content string) error

	// LinkFolder attaches the page to a folder; an empty folderID detaches it.
	LinkFolder(ctx context.Context, id, folderID string) error

	Delete(ctx context.Context, id string) error
}
