package postgres

import (
	"context"
	"database/sql"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// PagePostgres is a PostgreSQL implementation of repository.PageRepository.
type PagePostgres struct {
	db *sql.DB
}

// NewPagePostgres creates a new PagePostgres repository.
func NewPagePostgres(db *sql.DB) *PagePostgres {
	return &PagePostgres{db: db}
}

var _ repository.PageRepository = (*PagePostgres)(nil)

const pageColumns = `id, user_id, folder_id, name, content, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*model.Page, error) {
	var (
		p        model.Page
		folderID sql.NullString
	)
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&folderID,
		&p.Name,
		&p.Content,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.FolderID = folderID.String
	return &p, nil
}

// Create inserts a new page row and returns the stored record.
func (r *PagePostgres) Create(ctx context.Context, p *model.Page) (*model.Page, error) {
	const q = `
		INSERT INTO pages (id, user_id, folder_id, name, content, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7)
		RETURNING ` + pageColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.UserID,
		p.FolderID,
		p.Name,
		p.Content,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanPage(row)
}

// FindByID fetches a single page by its ID.
func (r *PagePostgres) FindByID(ctx context.Context, id string) (*model.Page, error) {
	const q = `SELECT ` + pageColumns + ` FROM pages WHERE id = $1`
	return scanPage(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns all pages owned by a user, newest first.
func (r *PagePostgres) ListByUser(ctx context.Context, userID string) ([]model.Page, error) {
	const q = `SELECT ` + pageColumns + ` FROM pages WHERE user_id = $1 ORDER BY updated_at DESC, id DESC`
	return r.list(ctx, q, userID)
}

// ListByFolder returns all pages linked to a folder.
func (r *PagePostgres) ListByFolder(ctx context.Context, folderID string) ([]model.Page, error) {
	const q = `SELECT ` + pageColumns + ` FROM pages WHERE folder_id = $1 ORDER BY updated_at DESC, id DESC`
	return r.list(ctx, q, folderID)
}

func (r *PagePostgres) list(ctx context.Context, q string, arg any) ([]model.Page, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Page, 0)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateContent overwrites the page content in full.
func (r *PagePostgres) UpdateContent(ctx context.Context, id, content string) error {
	const q = `UPDATE pages SET content = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, content)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// LinkFolder attaches the page to a folder; an empty folderID detaches it.
func (r *PagePostgres) LinkFolder(ctx context.Context, id, folderID string) error {
	const q = `UPDATE pages SET folder_id = NULLIF($2, '')::uuid, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, folderID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a page by ID. It does not return an error if the row does not exist.
func (r *PagePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM pages WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
