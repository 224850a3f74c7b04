package collab

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"notehub/internal/repository"
)

// BoardStore adapts the board repository to the DocumentStore contract.
// Content is the board's full elements blob.
type BoardStore struct {
	boards repository.BoardRepository
}

// NewBoardStore wraps a board repository.
func NewBoardStore(boards repository.BoardRepository) *BoardStore {
	return &BoardStore{boards: boards}
}

var _ DocumentStore = (*BoardStore)(nil)

func (s *BoardStore) Lookup(ctx context.Context, id string) (Document, error) {
	b, err := s.boards.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return Document{ID: b.ID, PublicToken: b.ShareToken}, nil
}

func (s *BoardStore) Read(ctx context.Context, id string) (json.RawMessage, error) {
	b, err := s.boards.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b.Elements, nil
}

func (s *BoardStore) Write(ctx context.Context, id string, content json.RawMessage) error {
	if err := s.boards.UpdateElements(ctx, id, content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// PageStore adapts the page repository to the DocumentStore contract.
// Content is the page text; over the wire it travels as a JSON string.
// Pages have no standing public token, so only grants and signed assertions
// admit connections.
type PageStore struct {
	pages repository.PageRepository
}

// NewPageStore wraps a page repository.
func NewPageStore(pages repository.PageRepository) *PageStore {
	return &PageStore{pages: pages}
}

var _ DocumentStore = (*PageStore)(nil)

func (s *PageStore) Lookup(ctx context.Context, id string) (Document, error) {
	p, err := s.pages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return Document{ID: p.ID}, nil
}

func (s *PageStore) Read(ctx context.Context, id string) (json.RawMessage, error) {
	p, err := s.pages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.Marshal(p.Content)
}

func (s *PageStore) Write(ctx context.Context, id string, content json.RawMessage) error {
	// Clients send page content as a JSON string; anything else is stored
	// verbatim so no edit is silently dropped.
	var text string
	if err := json.Unmarshal(content, &text); err != nil {
		text = string(content)
	}
	if err := s.pages.UpdateContent(ctx, id, text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
