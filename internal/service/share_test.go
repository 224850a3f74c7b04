package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mailMocks "notehub/internal/mailer/mocks"
	"notehub/internal/model"
	repoMocks "notehub/internal/repository/mocks"
)

const testDocID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func TestShareService_CreateShareLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      CreateShareInput
		setupMocks func(mRepo *repoMocks.MockShareGrantRepository)
		wantErr    error
		checkRes   func(t *testing.T, g *model.ShareGrant, link string)
	}{
		{
			name:  "board grant gets a seven day expiry",
			input: CreateShareInput{DocumentID: testDocID, Kind: model.KindBoard, Role: model.RoleEditor},
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(g *model.ShareGrant) bool {
					return g.Kind == model.KindBoard && g.ExpiresAt != nil && g.Token != ""
				})).Return(func(ctx context.Context, g *model.ShareGrant) *model.ShareGrant {
					return g
				}, nil)
			},
			checkRes: func(t *testing.T, g *model.ShareGrant, link string) {
				require.NotNil(t, g.ExpiresAt)
				ttl := time.Until(*g.ExpiresAt)
				assert.InDelta(t, boardGrantExpiry, ttl, float64(time.Minute))
				assert.Contains(t, link, g.Token)
				assert.Contains(t, link, testDocID)
			},
		},
		{
			name:  "folder grant has no expiry",
			input: CreateShareInput{DocumentID: testDocID, Kind: model.KindFolder, Role: model.RoleViewer},
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(g *model.ShareGrant) bool {
					return g.Kind == model.KindFolder && g.ExpiresAt == nil
				})).Return(func(ctx context.Context, g *model.ShareGrant) *model.ShareGrant {
					return g
				}, nil)
			},
		},
		{
			name:       "validation error - bad role",
			input:      CreateShareInput{DocumentID: testDocID, Kind: model.KindBoard, Role: "owner"},
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "validation error - malformed document id",
			input:      CreateShareInput{DocumentID: "nope", Kind: model.KindBoard, Role: model.RoleViewer},
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {},
			wantErr:    ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockShareGrantRepository)
			svc := NewShareService(mRepo, nil, "https://app.example.com")

			tt.setupMocks(mRepo)

			g, link, err := svc.CreateShareLink(ctx, testUserID, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, g, link)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestShareService_Invite(t *testing.T) {
	ctx := context.Background()
	input := CreateShareInput{
		DocumentID: testDocID,
		Kind:       model.KindBoard,
		Role:       model.RoleViewer,
		Email:      "friend@example.com",
	}

	t.Run("happy path sends the link", func(t *testing.T) {
		mRepo := new(repoMocks.MockShareGrantRepository)
		mMail := new(mailMocks.MockMailer)
		mRepo.On("Create", ctx, mock.Anything).
			Return(func(ctx context.Context, g *model.ShareGrant) *model.ShareGrant { return g }, nil)
		mMail.On("Send", ctx, "friend@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
			return body != ""
		})).Return(nil)

		svc := NewShareService(mRepo, mMail, "https://app.example.com")
		g, err := svc.Invite(ctx, testUserID, input)
		assert.NoError(t, err)
		assert.NotNil(t, g)
		mMail.AssertExpectations(t)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := NewShareService(new(repoMocks.MockShareGrantRepository), new(mailMocks.MockMailer), "x")
		_, err := svc.Invite(ctx, testUserID, CreateShareInput{DocumentID: testDocID, Kind: model.KindBoard, Role: model.RoleViewer})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("mail failure keeps the grant", func(t *testing.T) {
		mRepo := new(repoMocks.MockShareGrantRepository)
		mMail := new(mailMocks.MockMailer)
		mRepo.On("Create", ctx, mock.Anything).
			Return(func(ctx context.Context, g *model.ShareGrant) *model.ShareGrant { return g }, nil)
		mMail.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down"))

		svc := NewShareService(mRepo, mMail, "x")
		g, err := svc.Invite(ctx, testUserID, input)
		assert.Error(t, err)
		assert.NotNil(t, g)
	})
}

func TestShareService_VerifyToken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		token      string
		setupMocks func(mRepo *repoMocks.MockShareGrantRepository)
		wantErr    error
	}{
		{
			name:  "happy path",
			token: "tok-1",
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {
				mRepo.On("FindByToken", ctx, "tok-1").
					Return(&model.ShareGrant{ID: "g1", Token: "tok-1", Role: model.RoleEditor}, nil)
			},
		},
		{
			name:       "empty token",
			token:      "",
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {},
			wantErr:    ErrTokenInvalid,
		},
		{
			name:  "unknown token",
			token: "tok-x",
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {
				mRepo.On("FindByToken", ctx, "tok-x").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name:  "expired token",
			token: "tok-old",
			setupMocks: func(mRepo *repoMocks.MockShareGrantRepository) {
				past := time.Now().Add(-time.Hour)
				mRepo.On("FindByToken", ctx, "tok-old").
					Return(&model.ShareGrant{ID: "g2", Token: "tok-old", ExpiresAt: &past}, nil)
			},
			wantErr: ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockShareGrantRepository)
			svc := NewShareService(mRepo, nil, "x")

			tt.setupMocks(mRepo)

			_, err := svc.VerifyToken(ctx, tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
