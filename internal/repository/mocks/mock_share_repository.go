package mocks

import (
	"context"

	"notehub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockShareGrantRepository struct {
	mock.Mock
}

func (m *MockShareGrantRepository) Create(ctx context.Context, g *model.ShareGrant) (*model.ShareGrant, error) {
	args := m.Called(ctx, g)
	if f, ok := args.Get(0).(func(context.Context, *model.ShareGrant) *model.ShareGrant); ok {
		return f(ctx, g), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareGrant), args.Error(1)
}

func (m *MockShareGrantRepository) FindByDocumentToken(ctx context.Context, documentID, token string) (*model.ShareGrant, error) {
	args := m.Called(ctx, documentID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareGrant), args.Error(1)
}

func (m *MockShareGrantRepository) FindByToken(ctx context.Context, token string) (*model.ShareGrant, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareGrant), args.Error(1)
}

func (m *MockShareGrantRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
