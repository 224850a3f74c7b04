package repository

import (
	"context"

	"notehub/internal/model"
)

// ShareGrantRepository defines data access for tokenized share grants.
type ShareGrantRepository interface {
	Create(ctx context.Context, g *model.ShareGrant) (*model.ShareGrant, error)

	// FindByDocumentToken looks a grant up by its (document, token) pair.
	// Expiry is not filtered here; callers decide how to treat expired grants.
	FindByDocumentToken(ctx context.Context, documentID, token string) (*model.ShareGrant, error)

	// FindByToken looks a grant up by token alone (share-link verification).
	FindByToken(ctx context.Context, token string) (*model.ShareGrant, error)

	Delete(ctx context.Context, id string) error
}
