package postgres

import (
	"context"
	"database/sql"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// ShareGrantPostgres is a PostgreSQL implementation of repository.ShareGrantRepository.
type ShareGrantPostgres struct {
	db *sql.DB
}

// NewShareGrantPostgres creates a new ShareGrantPostgres repository.
func NewShareGrantPostgres(db *sql.DB) *ShareGrantPostgres {
	return &ShareGrantPostgres{db: db}
}

var _ repository.ShareGrantRepository = (*ShareGrantPostgres)(nil)

const grantColumns = `id, document_id, kind, token, role, invited_by, email, created_at, expires_at`

func scanGrant(row interface{ Scan(...any) error }) (*model.ShareGrant, error) {
	var (
		g         model.ShareGrant
		expiresAt sql.NullTime
	)
	if err := row.Scan(
		&g.ID,
		&g.DocumentID,
		&g.Kind,
		&g.Token,
		&g.Role,
		&g.InvitedBy,
		&g.Email,
		&g.CreatedAt,
		&expiresAt,
	); err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		g.ExpiresAt = &t
	}
	return &g, nil
}

// Create inserts a new share grant row and returns the stored record.
func (r *ShareGrantPostgres) Create(ctx context.Context, g *model.ShareGrant) (*model.ShareGrant, error) {
	const q = `
		INSERT INTO share_grants (id, document_id, kind, token, role, invited_by, email, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + grantColumns
	row := r.db.QueryRowContext(ctx, q,
		g.ID,
		g.DocumentID,
		g.Kind,
		g.Token,
		g.Role,
		g.InvitedBy,
		g.Email,
		g.CreatedAt,
		g.ExpiresAt,
	)
	return scanGrant(row)
}

// FindByDocumentToken looks a grant up by its (document, token) pair.
func (r *ShareGrantPostgres) FindByDocumentToken(ctx context.Context, documentID, token string) (*model.ShareGrant, error) {
	const q = `SELECT ` + grantColumns + ` FROM share_grants WHERE document_id = $1 AND token = $2`
	return scanGrant(r.db.QueryRowContext(ctx, q, documentID, token))
}

// FindByToken looks a grant up by token alone.
func (r *ShareGrantPostgres) FindByToken(ctx context.Context, token string) (*model.ShareGrant, error) {
	const q = `SELECT ` + grantColumns + ` FROM share_grants WHERE token = $1`
	return scanGrant(r.db.QueryRowContext(ctx, q, token))
}

// Delete removes a grant by ID. It does not return an error if the row does not exist.
func (r *ShareGrantPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM share_grants WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
