package mocks

import (
	"context"

	"notehub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetTier(ctx context.Context, userID string) (*model.UserTier, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTier), args.Error(1)
}

func (m *MockUserRepository) UpsertTier(ctx context.Context, t *model.UserTier) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockUserRepository) GetLoginToken(ctx context.Context, userID string) (*model.LoginToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginToken), args.Error(1)
}

func (m *MockUserRepository) UpsertLoginToken(ctx context.Context, t *model.LoginToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
