package repository

import (
	"context"

	"notehub/internal/model"
)

// UserRepository defines data access for per-user account records: the
// subscription tier (written by the payment pipeline, read here) and the
// rotating login token used for device handoff.
type UserRepository interface {
	GetTier(ctx context.Context, userID string) (*model.UserTier, error)
	UpsertTier(ctx context.Context, t *model.UserTier) error

	GetLoginToken(ctx context.Context, userID string) (*model.LoginToken, error)
	UpsertLoginToken(ctx context.Context, t *model.LoginToken) error
}
