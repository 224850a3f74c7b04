package postgres

import (
	"context"
	"database/sql"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// GetTier fetches a user's tier record.
func (r *UserPostgres) GetTier(ctx context.Context, userID string) (*model.UserTier, error) {
	const q = `SELECT user_id, tier, updated_at FROM user_tiers WHERE user_id = $1`
	var t model.UserTier
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&t.UserID, &t.Tier, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpsertTier inserts or replaces a user's tier record.
func (r *UserPostgres) UpsertTier(ctx context.Context, t *model.UserTier) error {
	const q = `
		INSERT INTO user_tiers (user_id, tier, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET tier = EXCLUDED.tier, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, q, t.UserID, t.Tier, t.UpdatedAt)
	return err
}

// GetLoginToken fetches a user's login token record.
func (r *UserPostgres) GetLoginToken(ctx context.Context, userID string) (*model.LoginToken, error) {
	const q = `SELECT user_id, token, created_at, updated_at FROM login_tokens WHERE user_id = $1`
	var t model.LoginToken
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&t.UserID, &t.Token, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpsertLoginToken inserts or rotates a user's login token.
func (r *UserPostgres) UpsertLoginToken(ctx context.Context, t *model.LoginToken) error {
	const q = `
		INSERT INTO login_tokens (user_id, token, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, q, t.UserID, t.Token, t.CreatedAt, t.UpdatedAt)
	return err
}
