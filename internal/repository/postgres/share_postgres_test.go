package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/model"
)

func TestShareGrantPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewShareGrantPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	exp := now.Add(7 * 24 * time.Hour)
	g := &model.ShareGrant{
		ID:         "grant-1",
		DocumentID: "doc-1",
		Kind:       model.KindBoard,
		Token:      "tok-1",
		Role:       model.RoleEditor,
		InvitedBy:  "user-1",
		Email:      "friend@example.com",
		CreatedAt:  now,
		ExpiresAt:  &exp,
	}

	rows := sqlmock.NewRows([]string{"id", "document_id", "kind", "token", "role", "invited_by", "email", "created_at", "expires_at"}).
		AddRow(g.ID, g.DocumentID, string(g.Kind), g.Token, string(g.Role), g.InvitedBy, g.Email, now, exp)

	mock.ExpectQuery("INSERT INTO share_grants").
		WithArgs(g.ID, g.DocumentID, g.Kind, g.Token, g.Role, g.InvitedBy, g.Email, now, g.ExpiresAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, g)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, model.RoleEditor, result.Role)
	require.NotNil(t, result.ExpiresAt)
	assert.WithinDuration(t, exp, *result.ExpiresAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareGrantPostgres_FindByDocumentToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewShareGrantPostgres(db)
	ctx := context.Background()

	t.Run("found without expiry", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "document_id", "kind", "token", "role", "invited_by", "email", "created_at", "expires_at"}).
			AddRow("grant-1", "doc-1", "folder", "tok-1", "viewer", "user-1", "", time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM share_grants WHERE document_id = (.+) AND token = ?").
			WithArgs("doc-1", "tok-1").
			WillReturnRows(rows)

		g, err := repo.FindByDocumentToken(ctx, "doc-1", "tok-1")

		assert.NoError(t, err)
		assert.Equal(t, model.RoleViewer, g.Role)
		assert.Nil(t, g.ExpiresAt)
	})

	t.Run("unknown pair", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM share_grants WHERE document_id = (.+) AND token = ?").
			WithArgs("doc-1", "bogus").
			WillReturnError(sql.ErrNoRows)

		g, err := repo.FindByDocumentToken(ctx, "doc-1", "bogus")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, g)
	})
}

func TestShareGrantPostgres_FindByToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewShareGrantPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "document_id", "kind", "token", "role", "invited_by", "email", "created_at", "expires_at"}).
		AddRow("grant-1", "doc-1", "page", "tok-1", "editor", "user-1", "", time.Now(), nil)

	mock.ExpectQuery("SELECT (.+) FROM share_grants WHERE token = ?").
		WithArgs("tok-1").
		WillReturnRows(rows)

	g, err := repo.FindByToken(ctx, "tok-1")

	assert.NoError(t, err)
	assert.Equal(t, model.KindPage, g.Kind)
}

func TestUserPostgres_Tier(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "tier", "updated_at"}).
			AddRow("user-1", "pro", time.Now())

		mock.ExpectQuery("SELECT user_id, tier, updated_at FROM user_tiers").
			WithArgs("user-1").
			WillReturnRows(rows)

		tier, err := repo.GetTier(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, model.TierPro, tier.Tier)
	})

	t.Run("upsert", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectExec("INSERT INTO user_tiers").
			WithArgs("user-1", model.TierPremium, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertTier(ctx, &model.UserTier{UserID: "user-1", Tier: model.TierPremium, UpdatedAt: now})
		assert.NoError(t, err)
	})
}
