package mocks

import (
	"context"

	"notehub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, f *model.Folder) (*model.Folder, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListByUser(ctx context.Context, userID string) ([]model.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFolderRepository) AddFile(ctx context.Context, f *model.FolderFile) (*model.FolderFile, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FolderFile), args.Error(1)
}

func (m *MockFolderRepository) ListFiles(ctx context.Context, folderID string) ([]model.FolderFile, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FolderFile), args.Error(1)
}

func (m *MockFolderRepository) FindFileByID(ctx context.Context, fileID string) (*model.FolderFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FolderFile), args.Error(1)
}

func (m *MockFolderRepository) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
