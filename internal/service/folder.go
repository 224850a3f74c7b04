package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"notehub/internal/model"
	"notehub/internal/repository"
	"notehub/internal/storage"
)

var ErrReaderNil = errors.New("reader is nil")

// downloadURLExpiry is how long a presigned file download link stays valid.
const downloadURLExpiry = 15 * time.Minute

// FolderService defines the use cases for folders and their uploaded files.
type FolderService interface {
	Create(ctx context.Context, userID, name string) (*model.Folder, error)
	Get(ctx context.Context, userID, id string) (*model.Folder, error)
	ListByUser(ctx context.Context, userID string) ([]model.Folder, error)
	// Delete removes the folder, its file metadata rows and the stored objects.
	Delete(ctx context.Context, userID, id string) error

	// UploadFile streams the content to object storage, saves a metadata row,
	// and rolls the object back if the DB save fails.
	// originalFilename is used only to extract the extension; the stored key
	// is a UUID plus that extension.
	UploadFile(ctx context.Context, userID, folderID string, r io.Reader, originalFilename, contentType string, size int64) (*model.FolderFile, error)

	ListFiles(ctx context.Context, userID, folderID string) ([]model.FolderFile, error)

	// FileDownloadURL returns a time-limited presigned URL for the file.
	FileDownloadURL(ctx context.Context, userID, fileID string) (string, error)

	// DeleteFile removes the object from storage, then deletes its row.
	DeleteFile(ctx context.Context, userID, fileID string) error
}

type folderService struct {
	store   storage.Storage
	folders repository.FolderRepository
}

// NewFolderService constructs a FolderService.
func NewFolderService(store storage.Storage, folders repository.FolderRepository) FolderService {
	return &folderService{store: store, folders: folders}
}

func (s *folderService) Create(ctx context.Context, userID, name string) (*model.Folder, error) {
	if name == "" {
		return nil, errors.Join(ErrValidation, errors.New("name is required"))
	}
	now := time.Now().UTC()
	f := &model.Folder{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.folders.Create(ctx, f)
}

func (s *folderService) Get(ctx context.Context, userID, id string) (*model.Folder, error) {
	return s.owned(ctx, userID, id)
}

func (s *folderService) ListByUser(ctx context.Context, userID string) ([]model.Folder, error) {
	return s.folders.ListByUser(ctx, userID)
}

func (s *folderService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	// Remove stored objects first; metadata rows cascade with the folder.
	files, err := s.folders.ListFiles(ctx, id)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := s.store.Delete(ctx, f.StoragePath); err != nil {
			return fmt.Errorf("delete storage object %s: %w", f.StoragePath, err)
		}
	}
	return s.folders.Delete(ctx, id)
}

func (s *folderService) UploadFile(ctx context.Context, userID, folderID string, r io.Reader, originalFilename, contentType string, size int64) (*model.FolderFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if _, err := s.owned(ctx, userID, folderID); err != nil {
		return nil, err
	}

	// Generate the object key using UUID + extension
	ext := filepath.Ext(originalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("resources", genName))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	file := &model.FolderFile{
		ID:          uuid.New().String(),
		FolderID:    folderID,
		Name:        originalFilename,
		ContentType: objInfo.ContentType,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.folders.AddFile(ctx, file)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *folderService) ListFiles(ctx context.Context, userID, folderID string) ([]model.FolderFile, error) {
	if _, err := s.owned(ctx, userID, folderID); err != nil {
		return nil, err
	}
	return s.folders.ListFiles(ctx, folderID)
}

func (s *folderService) FileDownloadURL(ctx context.Context, userID, fileID string) (string, error) {
	f, err := s.ownedFile(ctx, userID, fileID)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, f.StoragePath, downloadURLExpiry)
}

func (s *folderService) DeleteFile(ctx context.Context, userID, fileID string) error {
	f, err := s.ownedFile(ctx, userID, fileID)
	if err != nil {
		return err
	}
	// Delete from storage first; if this fails, keep the row to avoid losing
	// the orphaned object's reference.
	if err := s.store.Delete(ctx, f.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.folders.DeleteFile(ctx, f.ID)
}

func (s *folderService) owned(ctx context.Context, userID, id string) (*model.Folder, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.folders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if f.UserID != userID {
		return nil, ErrNotOwner
	}
	return f, nil
}

func (s *folderService) ownedFile(ctx context.Context, userID, fileID string) (*model.FolderFile, error) {
	if fileID == "" {
		return nil, ErrIDRequired
	}
	f, err := s.folders.FindFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Ownership flows through the containing folder.
	if _, err := s.owned(ctx, userID, f.FolderID); err != nil {
		return nil, err
	}
	return f, nil
}
