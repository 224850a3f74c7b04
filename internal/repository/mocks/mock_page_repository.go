package mocks

import (
	"context"

	"notehub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) Create(ctx context.Context, p *model.Page) (*model.Page, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageRepository) FindByID(ctx context.Context, id string) (*model.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageRepository) ListByUser(ctx context.Context, userID string) ([]model.Page, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Page), args.Error(1)
}

func (m *MockPageRepository) ListByFolder(ctx context.Context, folderID string) ([]model.Page, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Page), args.Error(1)
}

func (m *MockPageRepository) UpdateContent(ctx context.Context, id, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockPageRepository) LinkFolder(ctx context.Context, id, folderID string) error {
	args := m.Called(ctx, id, folderID)
	return args.Error(0)
}

func (m *MockPageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
