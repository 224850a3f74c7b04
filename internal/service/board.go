package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// CreateBoardInput is the validated payload for creating a moodboard.
type CreateBoardInput struct {
	Name     string          `validate:"required,max=200"`
	FolderID string          `validate:"omitempty,uuid4"`
	Elements json.RawMessage `validate:"-"`
}

// UpdateBoardInput replaces a board's name and elements.
type UpdateBoardInput struct {
	Name     string          `validate:"required,max=200"`
	Elements json.RawMessage `validate:"-"`
}

// BoardService defines the use cases for moodboards. All operations are
// scoped to the calling user; acting on another user's board fails with
// ErrNotOwner.
type BoardService interface {
	Create(ctx context.Context, userID string, in CreateBoardInput) (*model.Board, error)
	Get(ctx context.Context, userID, id string) (*model.Board, error)
	ListByUser(ctx context.Context, userID string) ([]model.Board, error)
	ListByFolder(ctx context.Context, userID, folderID string) ([]model.Board, error)
	Update(ctx context.Context, userID, id string, in UpdateBoardInput) (*model.Board, error)
	LinkFolder(ctx context.Context, userID, id, folderID string) error
	// EnableShareLink mints (or rotates) the board's public view-only token
	// and returns it.
	EnableShareLink(ctx context.Context, userID, id string) (string, error)
	Delete(ctx context.Context, userID, id string) error
}

type boardService struct {
	boards repository.BoardRepository
}

// NewBoardService constructs a BoardService.
func NewBoardService(boards repository.BoardRepository) BoardService {
	return &boardService{boards: boards}
}

func (s *boardService) Create(ctx context.Context, userID string, in CreateBoardInput) (*model.Board, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	elements := in.Elements
	if len(elements) == 0 {
		elements = json.RawMessage(`[]`)
	}
	now := time.Now().UTC()
	b := &model.Board{
		ID:        uuid.New().String(),
		UserID:    userID,
		FolderID:  in.FolderID,
		Name:      in.Name,
		Elements:  elements,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.boards.Create(ctx, b)
}

func (s *boardService) Get(ctx context.Context, userID, id string) (*model.Board, error) {
	return s.owned(ctx, userID, id)
}

func (s *boardService) ListByUser(ctx context.Context, userID string) ([]model.Board, error) {
	return s.boards.ListByUser(ctx, userID)
}

func (s *boardService) ListByFolder(ctx context.Context, userID, folderID string) ([]model.Board, error) {
	boards, err := s.boards.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	// Folder listings are user-scoped: another user's boards in a shared
	// folder are not exposed through this path.
	out := boards[:0]
	for _, b := range boards {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *boardService) Update(ctx context.Context, userID, id string, in UpdateBoardInput) (*model.Board, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	b, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	b.Name = in.Name
	if in.Elements != nil {
		b.Elements = in.Elements
	}
	return s.boards.Update(ctx, b)
}

func (s *boardService) LinkFolder(ctx context.Context, userID, id, folderID string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.boards.LinkFolder(ctx, id, folderID)
}

func (s *boardService) EnableShareLink(ctx context.Context, userID, id string) (string, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return "", err
	}
	token := uuid.New().String()
	if err := s.boards.SetShareToken(ctx, id, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *boardService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.boards.Delete(ctx, id)
}

// owned loads a board and enforces ownership.
func (s *boardService) owned(ctx context.Context, userID, id string) (*model.Board, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	b, err := s.boards.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}
	return b, nil
}
