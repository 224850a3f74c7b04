package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notehub/internal/model"
	repoMocks "notehub/internal/repository/mocks"
)

const (
	testUserID  = "user-1"
	testBoardID = "0f8fad5b-d9cb-469f-a165-70867728950e"
)

func TestBoardService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      CreateBoardInput
		setupMocks func(mRepo *repoMocks.MockBoardRepository)
		wantErr    error
		checkRes   func(t *testing.T, b *model.Board)
	}{
		{
			name:  "happy path",
			input: CreateBoardInput{Name: "mood"},
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(b *model.Board) bool {
					return b.Name == "mood" && b.UserID == testUserID && string(b.Elements) == "[]"
				})).Return(&model.Board{ID: "gen-id", Name: "mood"}, nil)
			},
			checkRes: func(t *testing.T, b *model.Board) {
				assert.Equal(t, "gen-id", b.ID)
			},
		},
		{
			name:       "validation error - empty name",
			input:      CreateBoardInput{},
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:  "elements passed through",
			input: CreateBoardInput{Name: "mood", Elements: json.RawMessage(`[{"type":"note"}]`)},
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(b *model.Board) bool {
					return string(b.Elements) == `[{"type":"note"}]`
				})).Return(&model.Board{ID: "gen-id"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBoardRepository)
			svc := NewBoardService(mRepo)

			tt.setupMocks(mRepo)

			b, err := svc.Create(ctx, testUserID, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, b)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBoardService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockBoardRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   testBoardID,
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("FindByID", ctx, testBoardID).
					Return(&model.Board{ID: testBoardID, UserID: testUserID}, nil)
			},
		},
		{
			name:       "empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   testBoardID,
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("FindByID", ctx, testBoardID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "owned by someone else",
			id:   testBoardID,
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("FindByID", ctx, testBoardID).
					Return(&model.Board{ID: testBoardID, UserID: "other"}, nil)
			},
			wantErr: ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBoardRepository)
			svc := NewBoardService(mRepo)

			tt.setupMocks(mRepo)

			_, err := svc.Get(ctx, testUserID, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBoardService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      UpdateBoardInput
		setupMocks func(mRepo *repoMocks.MockBoardRepository)
		wantErr    error
	}{
		{
			name:  "happy path replaces elements",
			input: UpdateBoardInput{Name: "renamed", Elements: json.RawMessage(`[1]`)},
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("FindByID", ctx, testBoardID).
					Return(&model.Board{ID: testBoardID, UserID: testUserID, Name: "old", Elements: json.RawMessage(`[]`)}, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(b *model.Board) bool {
					return b.Name == "renamed" && string(b.Elements) == "[1]"
				})).Return(&model.Board{ID: testBoardID, Name: "renamed"}, nil)
			},
		},
		{
			name:  "nil elements keeps existing",
			input: UpdateBoardInput{Name: "renamed"},
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("FindByID", ctx, testBoardID).
					Return(&model.Board{ID: testBoardID, UserID: testUserID, Elements: json.RawMessage(`[42]`)}, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(b *model.Board) bool {
					return string(b.Elements) == "[42]"
				})).Return(&model.Board{ID: testBoardID}, nil)
			},
		},
		{
			name:  "not owner",
			input: UpdateBoardInput{Name: "renamed"},
			setupMocks: func(mRepo *repoMocks.MockBoardRepository) {
				mRepo.On("FindByID", ctx, testBoardID).
					Return(&model.Board{ID: testBoardID, UserID: "other"}, nil)
			},
			wantErr: ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBoardRepository)
			svc := NewBoardService(mRepo)

			tt.setupMocks(mRepo)

			_, err := svc.Update(ctx, testUserID, testBoardID, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBoardService_EnableShareLink(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path mints a token", func(t *testing.T) {
		mRepo := new(repoMocks.MockBoardRepository)
		mRepo.On("FindByID", ctx, testBoardID).
			Return(&model.Board{ID: testBoardID, UserID: testUserID}, nil)
		mRepo.On("SetShareToken", ctx, testBoardID, mock.MatchedBy(func(tok string) bool {
			return tok != ""
		})).Return(nil)

		svc := NewBoardService(mRepo)
		token, err := svc.EnableShareLink(ctx, testUserID, testBoardID)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockBoardRepository)
		mRepo.On("FindByID", ctx, testBoardID).
			Return(&model.Board{ID: testBoardID, UserID: testUserID}, nil)
		mRepo.On("SetShareToken", ctx, testBoardID, mock.Anything).
			Return(errors.New("db fail"))

		svc := NewBoardService(mRepo)
		_, err := svc.EnableShareLink(ctx, testUserID, testBoardID)
		assert.Error(t, err)
	})
}

func TestBoardService_ListByFolder(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockBoardRepository)
	mRepo.On("ListByFolder", ctx, "folder-1").Return([]model.Board{
		{ID: "b1", UserID: testUserID},
		{ID: "b2", UserID: "other"},
		{ID: "b3", UserID: testUserID},
	}, nil)

	svc := NewBoardService(mRepo)
	boards, err := svc.ListByFolder(ctx, testUserID, "folder-1")
	assert.NoError(t, err)
	assert.Len(t, boards, 2)
	for _, b := range boards {
		assert.Equal(t, testUserID, b.UserID)
	}
}
