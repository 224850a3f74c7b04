package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"notehub/internal/model"
)

type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) Create(ctx context.Context, userID, name string) (*model.Folder, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Get(ctx context.Context, userID, id string) (*model.Folder, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) ListByUser(ctx context.Context, userID string) ([]model.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockFolderService) UploadFile(ctx context.Context, userID, folderID string, r io.Reader, originalFilename, contentType string, size int64) (*model.FolderFile, error) {
	args := m.Called(ctx, userID, folderID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FolderFile), args.Error(1)
}

func (m *MockFolderService) ListFiles(ctx context.Context, userID, folderID string) ([]model.FolderFile, error) {
	args := m.Called(ctx, userID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FolderFile), args.Error(1)
}

func (m *MockFolderService) FileDownloadURL(ctx context.Context, userID, fileID string) (string, error) {
	args := m.Called(ctx, userID, fileID)
	return args.String(0), args.Error(1)
}

func (m *MockFolderService) DeleteFile(ctx context.Context, userID, fileID string) error {
	args := m.Called(ctx, userID, fileID)
	return args.Error(0)
}
