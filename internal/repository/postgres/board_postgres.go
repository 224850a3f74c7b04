package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// BoardPostgres is a PostgreSQL implementation of repository.BoardRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type BoardPostgres struct {
	db *sql.DB
}

// NewBoardPostgres creates a new BoardPostgres repository.
func NewBoardPostgres(db *sql.DB) *BoardPostgres {
	return &BoardPostgres{db: db}
}

var _ repository.BoardRepository = (*BoardPostgres)(nil)

const boardColumns = `id, user_id, folder_id, name, elements, share_token, created_at, updated_at`

func scanBoard(row interface{ Scan(...any) error }) (*model.Board, error) {
	var (
		b          model.Board
		folderID   sql.NullString
		shareToken sql.NullString
	)
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&folderID,
		&b.Name,
		&b.Elements,
		&shareToken,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.FolderID = folderID.String
	b.ShareToken = shareToken.String
	return &b, nil
}

// Create inserts a new board row and returns the stored record.
func (r *BoardPostgres) Create(ctx context.Context, b *model.Board) (*model.Board, error) {
	const q = `
		INSERT INTO boards (id, user_id, folder_id, name, elements, share_token, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, NULLIF($6, ''), $7, $8)
		RETURNING ` + boardColumns
	elements := b.Elements
	if len(elements) == 0 {
		elements = json.RawMessage(`[]`)
	}
	row := r.db.QueryRowContext(ctx, q,
		b.ID,
		b.UserID,
		b.FolderID,
		b.Name,
		[]byte(elements),
		b.ShareToken,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return scanBoard(row)
}

// FindByID fetches a single board by its ID.
func (r *BoardPostgres) FindByID(ctx context.Context, id string) (*model.Board, error) {
	const q = `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`
	return scanBoard(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns all boards owned by a user, newest first.
func (r *BoardPostgres) ListByUser(ctx context.Context, userID string) ([]model.Board, error) {
	const q = `SELECT ` + boardColumns + ` FROM boards WHERE user_id = $1 ORDER BY updated_at DESC, id DESC`
	return r.list(ctx, q, userID)
}

// ListByFolder returns all boards linked to a folder.
func (r *BoardPostgres) ListByFolder(ctx context.Context, folderID string) ([]model.Board, error) {
	const q = `SELECT ` + boardColumns + ` FROM boards WHERE folder_id = $1 ORDER BY updated_at DESC, id DESC`
	return r.list(ctx, q, folderID)
}

func (r *BoardPostgres) list(ctx context.Context, q string, arg any) ([]model.Board, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Board, 0)
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the board's name and elements and bumps updated_at.
func (r *BoardPostgres) Update(ctx context.Context, b *model.Board) (*model.Board, error) {
	const q = `
		UPDATE boards
		SET name = $2, elements = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + boardColumns
	row := r.db.QueryRowContext(ctx, q, b.ID, b.Name, []byte(b.Elements))
	return scanBoard(row)
}

// UpdateElements overwrites the full elements blob.
func (r *BoardPostgres) UpdateElements(ctx context.Context, id string, elements json.RawMessage) error {
	const q = `UPDATE boards SET elements = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, []byte(elements))
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

// SetShareToken stores the board's public share token.
func (r *BoardPostgres) SetShareToken(ctx context.Context, id, token string) error {
	const q = `UPDATE boards SET share_token = NULLIF($2, ''), updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, token)
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

// LinkFolder attaches the board to a folder; an empty folderID detaches it.
func (r *BoardPostgres) LinkFolder(ctx context.Context, id, folderID string) error {
	const q = `UPDATE boards SET folder_id = NULLIF($2, '')::uuid, updated_at = now() WHERE id = $1`
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

// Delete removes a board by ID. It does not return an error if the row does not exist.
func (r *BoardPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM boards WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
