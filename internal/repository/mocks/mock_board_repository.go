package mocks

import (
	"context"
	"encoding/json"

	"notehub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, b *model.Board) (*model.Board, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id string) (*model.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) ListByUser(ctx context.Context, userID string) ([]model.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) ListByFolder(ctx context.Context, folderID string) ([]model.Board, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, b *model.Board) (*model.Board, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) UpdateElements(ctx context.Context, id string, elements json.RawMessage) error {
	args := m.Called(ctx, id, elements)
	return args.Error(0)
}

func (m *MockBoardRepository) SetShareToken(ctx context.Context, id, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockBoardRepository) LinkFolder(ctx context.Context, id, folderID string) error {
	args := m.Called(ctx, id, folderID)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
