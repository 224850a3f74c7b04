package postgres

import (
	"context"
	"database/sql"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// TaskPostgres is a PostgreSQL implementation of repository.TaskRepository.
type TaskPostgres struct {
	db *sql.DB
}

// NewTaskPostgres creates a new TaskPostgres repository.
func NewTaskPostgres(db *sql.DB) *TaskPostgres {
	return &TaskPostgres{db: db}
}

var _ repository.TaskRepository = (*TaskPostgres)(nil)

const taskColumns = `id, user_id, folder_id, text, start_at, end_at, is_complete, back_color, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*model.Task, error) {
	var (
		t        model.Task
		folderID sql.NullString
	)
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&folderID,
		&t.Text,
		&t.Start,
		&t.End,
		&t.IsComplete,
		&t.BackColor,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.FolderID = folderID.String
	return &t, nil
}

// Create inserts a new task row and returns the stored record.
func (r *TaskPostgres) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	const q = `
		INSERT INTO tasks (id, user_id, folder_id, text, start_at, end_at, is_complete, back_color, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + taskColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID,
		t.UserID,
		t.FolderID,
		t.Text,
		t.Start,
		t.End,
		t.IsComplete,
		t.BackColor,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return scanTask(row)
}

// FindByID fetches a single task by its ID.
func (r *TaskPostgres) FindByID(ctx context.Context, id string) (*model.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns all tasks owned by a user ordered by start date.
func (r *TaskPostgres) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY start_at ASC, id ASC`
	return r.list(ctx, q, userID)
}

// ListByFolder returns all tasks in a folder ordered by start date.
func (r *TaskPostgres) ListByFolder(ctx context.Context, folderID string) ([]model.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE folder_id = $1 ORDER BY start_at ASC, id ASC`
	return r.list(ctx, q, folderID)
}

func (r *TaskPostgres) list(ctx context.Context, q string, arg any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces text, dates, completion flag and color.
func (r *TaskPostgres) Update(ctx context.Context, t *model.Task) (*model.Task, error) {
	const q = `
		UPDATE tasks
		SET text = $2, start_at = $3, end_at = $4, is_complete = $5, back_color = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + taskColumns
	row := r.db.QueryRowContext(ctx, q, t.ID, t.Text, t.Start, t.End, t.IsComplete, t.BackColor)
	return scanTask(row)
}

// Delete removes a task by ID. It does not return an error if the row does not exist.
func (r *TaskPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tasks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
