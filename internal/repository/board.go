package repository

import (
	"context"
	"encoding/json"

	"notehub/internal/model"
)

// BoardRepository defines data access for moodboards using SQL queries only.
// No business logic here, strictly persistence operations.
type BoardRepository interface {
	// Create inserts a new board row and returns the stored record.
	Create(ctx context.Context, b *model.Board) (*model.Board, error)

	// FindByID returns a board by its ID.
	FindByID(ctx context.Context, id string) (*model.Board, error)

	// ListByUser returns all boards owned by a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Board, error)

	// ListByFolder returns all boards linked to a folder.
	ListByFolder(ctx context.Context, folderID string) ([]model.Board, error)

	// Update replaces the board's name and elements and bumps updated_at.
	Update(ctx context.Context, b *model.Board) (*model.Board, error)

	// UpdateElements overwrites the full elements blob (last write wins).
	UpdateElements(ctx context.Context, id string, elements json.RawMessage) error

	// SetShareToken stores the board's public share token. An empty token
	// disables the public-link path.
	SetShareToken(ctx context.Context, id, token string) error

	// LinkFolder attaches the board to a folder; an empty folderID detaches it.
	LinkFolder(ctx context.Context, id, folderID string) error

	// Delete removes a board by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
