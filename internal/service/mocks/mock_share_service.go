package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notehub/internal/model"
	"notehub/internal/service"
)

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) CreateShareLink(ctx context.Context, userID string, in service.CreateShareInput) (*model.ShareGrant, string, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.ShareGrant), args.String(1), args.Error(2)
}

func (m *MockShareService) Invite(ctx context.Context, userID string, in service.CreateShareInput) (*model.ShareGrant, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareGrant), args.Error(1)
}

func (m *MockShareService) VerifyToken(ctx context.Context, token string) (*model.ShareGrant, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareGrant), args.Error(1)
}

func (m *MockShareService) Revoke(ctx context.Context, userID, grantID string) error {
	args := m.Called(ctx, userID, grantID)
	return args.Error(0)
}
