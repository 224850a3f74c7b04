package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"notehub/internal/model"
)

func TestBoardPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBoardPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	b := &model.Board{
		ID:        "board-uuid",
		UserID:    "user-1",
		Name:      "mood",
		Elements:  json.RawMessage(`[]`),
		CreatedAt: now,
		UpdatedAt: now,
	}

	rows := sqlmock.NewRows([]string{"id", "user_id", "folder_id", "name", "elements", "share_token", "created_at", "updated_at"}).
		AddRow(b.ID, b.UserID, nil, b.Name, []byte(`[]`), nil, now, now)

	mock.ExpectQuery("INSERT INTO boards").
		WithArgs(b.ID, b.UserID, b.FolderID, b.Name, []byte(`[]`), b.ShareToken, now, now).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, b)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, b.ID, result.ID)
	assert.Empty(t, result.FolderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBoardPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "folder_id", "name", "elements", "share_token", "created_at", "updated_at"}).
			AddRow("board-1", "user-1", "folder-1", "mood", []byte(`[{"type":"note"}]`), "pub-tok", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM boards WHERE id = ?").
			WithArgs("board-1").
			WillReturnRows(rows)

		b, err := repo.FindByID(ctx, "board-1")

		assert.NoError(t, err)
		assert.Equal(t, "folder-1", b.FolderID)
		assert.Equal(t, "pub-tok", b.ShareToken)
		assert.JSONEq(t, `[{"type":"note"}]`, string(b.Elements))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM boards WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		b, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, b)
	})
}

func TestBoardPostgres_UpdateElements(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBoardPostgres(db)
	ctx := context.Background()

	t.Run("row updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE boards SET elements").
			WithArgs("board-1", []byte(`[1,2]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateElements(ctx, "board-1", json.RawMessage(`[1,2]`))
		assert.NoError(t, err)
	})

	t.Run("missing row maps to ErrNoRows", func(t *testing.T) {
		mock.ExpectExec("UPDATE boards SET elements").
			WithArgs("missing", []byte(`[]`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateElements(ctx, "missing", json.RawMessage(`[]`))
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestBoardPostgres_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBoardPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "folder_id", "name", "elements", "share_token", "created_at", "updated_at"}).
		AddRow("b1", "user-1", nil, "one", []byte(`[]`), nil, time.Now(), time.Now()).
		AddRow("b2", "user-1", nil, "two", []byte(`[]`), nil, time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM boards WHERE user_id = ?").
		WithArgs("user-1").
		WillReturnRows(rows)

	boards, err := repo.ListByUser(ctx, "user-1")

	assert.NoError(t, err)
	assert.Len(t, boards, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBoardPostgres(db)
	ctx := context.Background()

	// Deleting a missing row is not an error.
	mock.ExpectExec("DELETE FROM boards").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(ctx, "missing"))
}
