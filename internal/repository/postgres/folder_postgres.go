package postgres

import (
	"context"
	"database/sql"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// FolderPostgres is a PostgreSQL implementation of repository.FolderRepository.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

// Create inserts a new folder row and returns the stored record.
func (r *FolderPostgres) Create(ctx context.Context, f *model.Folder) (*model.Folder, error) {
	const q = `
		INSERT INTO folders (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q, f.ID, f.UserID, f.Name, f.CreatedAt, f.UpdatedAt)
	var out model.Folder
	if err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single folder by its ID.
func (r *FolderPostgres) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	const q = `SELECT id, user_id, name, created_at, updated_at FROM folders WHERE id = $1`
	var f model.Folder
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByUser returns all folders owned by a user, newest first.
func (r *FolderPostgres) ListByUser(ctx context.Context, userID string) ([]model.Folder, error) {
	const q = `SELECT id, user_id, name, created_at, updated_at FROM folders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Folder, 0)
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a folder by ID; file metadata rows cascade.
func (r *FolderPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM folders WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// AddFile inserts a file metadata row for a folder.
func (r *FolderPostgres) AddFile(ctx context.Context, f *model.FolderFile) (*model.FolderFile, error) {
	const q = `
		INSERT INTO folder_files (id, folder_id, name, content_type, storage_path, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, folder_id, name, content_type, storage_path, size, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.FolderID,
		f.Name,
		f.ContentType,
		f.StoragePath,
		f.Size,
		f.CreatedAt,
	)
	var out model.FolderFile
	if err := row.Scan(&out.ID, &out.FolderID, &out.Name, &out.ContentType, &out.StoragePath, &out.Size, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFiles returns the metadata rows for all files in a folder.
func (r *FolderPostgres) ListFiles(ctx context.Context, folderID string) ([]model.FolderFile, error) {
	const q = `
		SELECT id, folder_id, name, content_type, storage_path, size, created_at
		FROM folder_files
		WHERE folder_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FolderFile, 0)
	for rows.Next() {
		var f model.FolderFile
		if err := rows.Scan(&f.ID, &f.FolderID, &f.Name, &f.ContentType, &f.StoragePath, &f.Size, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindFileByID fetches a single file metadata row.
func (r *FolderPostgres) FindFileByID(ctx context.Context, fileID string) (*model.FolderFile, error) {
	const q = `
		SELECT id, folder_id, name, content_type, storage_path, size, created_at
		FROM folder_files
		WHERE id = $1
	`
	var f model.FolderFile
	if err := r.db.QueryRowContext(ctx, q, fileID).Scan(&f.ID, &f.FolderID, &f.Name, &f.ContentType, &f.StoragePath, &f.Size, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFile removes a file metadata row by ID.
func (r *FolderPostgres) DeleteFile(ctx context.Context, fileID string) error {
	const q = `DELETE FROM folder_files WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, fileID)
	return err
}
