package repository

import (
	"context"

	"notehub/internal/model"
)

// FolderRepository defines data access for folders and their uploaded files.
// File bytes live in object storage; only metadata rows are managed here.
type FolderRepository interface {
	Create(ctx context.Context, f *model.Folder) (*model.Folder, error)
	FindByID(ctx context.Context, id string) (*model.Folder, error)
	ListByUser(ctx context.Context, userID string) ([]model.Folder, error)
	Delete(ctx context.Context, id string) error

	AddFile(ctx context.Context, f *model.FolderFile) (*model.FolderFile, error)
	ListFiles(ctx context.Context, folderID string) ([]model.FolderFile, error)
	FindFileByID(ctx context.Context, fileID string) (*model.FolderFile, error)
	DeleteFile(ctx context.Context, fileID string) error
}
