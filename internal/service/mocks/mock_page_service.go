package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notehub/internal/model"
	"notehub/internal/service"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Create(ctx context.Context, userID string, in service.CreatePageInput) (*model.Page, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Get(ctx context.Context, userID, id string) (*model.Page, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) ListByUser(ctx context.Context, userID string) ([]model.Page, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Page), args.Error(1)
}

func (m *MockPageService) ListByFolder(ctx context.Context, userID, folderID string) ([]model.Page, error) {
	args := m.Called(ctx, userID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Page), args.Error(1)
}

func (m *MockPageService) UpdateContent(ctx context.Context, userID, id, content string) error {
	args := m.Called(ctx, userID, id, content)
	return args.Error(0)
}

func (m *MockPageService) LinkFolder(ctx context.Context, userID, id, folderID string) error {
	args := m.Called(ctx, userID, id, folderID)
	return args.Error(0)
}

func (m *MockPageService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
