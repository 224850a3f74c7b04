package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// CreatePageInput is the validated payload for creating a notebook page.
type CreatePageInput struct {
	Name     string `validate:"required,max=200"`
	FolderID string `validate:"omitempty,uuid4"`
	Content  string `validate:"-"`
}

// PageService defines the use cases for notebook pages.
type PageService interface {
	Create(ctx context.Context, userID string, in CreatePageInput) (*model.Page, error)
	Get(ctx context.Context, userID, id string) (*model.Page, error)
	ListByUser(ctx context.Context, userID string) ([]model.Page, error)
	ListByFolder(ctx context.Context, userID, folderID string) ([]model.Page, error)
	// UpdateContent overwrites the page content in full (last write wins).
	UpdateContent(ctx context.Context, userID, id, content string) error
	LinkFolder(ctx context.Context, userID, id, folderID string) error
	Delete(ctx context.Context, userID, id string) error
}

type pageService struct {
	pages repository.PageRepository
}

// NewPageService constructs a PageService.
func NewPageService(pages repository.PageRepository) PageService {
	return &pageService{pages: pages}
}

func (s *pageService) Create(ctx context.Context, userID string, in CreatePageInput) (*model.Page, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &model.Page{
		ID:        uuid.New().String(),
		UserID:    userID,
		FolderID:  in.FolderID,
		Name:      in.Name,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.pages.Create(ctx, p)
}

func (s *pageService) Get(ctx context.Context, userID, id string) (*model.Page, error) {
	return s.owned(ctx, userID, id)
}

func (s *pageService) ListByUser(ctx context.Context, userID string) ([]model.Page, error) {
	return s.pages.ListByUser(ctx, userID)
}

func (s *pageService) ListByFolder(ctx context.Context, userID, folderID string) ([]model.Page, error) {
	pages, err := s.pages.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	out := pages[:0]
	for _, p := range pages {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *pageService) UpdateContent(ctx context.Context, userID, id, content string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.pages.UpdateContent(ctx, id, content)
}

func (s *pageService) LinkFolder(ctx context.Context, userID, id, folderID string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.pages.LinkFolder(ctx, id, folderID)
}

func (s *pageService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.pages.Delete(ctx, id)
}

func (s *pageService) owned(ctx context.Context, userID, id string) (*model.Page, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.pages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}
	return p, nil
}
