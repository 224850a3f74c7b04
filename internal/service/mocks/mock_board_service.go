package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notehub/internal/model"
	"notehub/internal/service"
)

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) Create(ctx context.Context, userID string, in service.CreateBoardInput) (*model.Board, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardService) Get(ctx context.Context, userID, id string) (*model.Board, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardService) ListByUser(ctx context.Context, userID string) ([]model.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardService) ListByFolder(ctx context.Context, userID, folderID string) ([]model.Board, error) {
	args := m.Called(ctx, userID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardService) Update(ctx context.Context, userID, id string, in service.UpdateBoardInput) (*model.Board, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardService) LinkFolder(ctx context.Context, userID, id, folderID string) error {
	args := m.Called(ctx, userID, id, folderID)
	return args.Error(0)
}

func (m *MockBoardService) EnableShareLink(ctx context.Context, userID, id string) (string, error) {
	args := m.Called(ctx, userID, id)
	return args.String(0), args.Error(1)
}

func (m *MockBoardService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
