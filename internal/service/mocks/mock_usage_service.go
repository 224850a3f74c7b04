package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notehub/internal/model"
	"notehub/internal/service"
)

type MockUsageService struct {
	mock.Mock
}

func (m *MockUsageService) Consume(ctx context.Context, userID string, metric service.Metric) (int64, error) {
	args := m.Called(ctx, userID, metric)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsageService) Tier(ctx context.Context, userID string) (model.Tier, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Tier), args.Error(1)
}

func (m *MockUsageService) RotateLoginToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUsageService) LoginToken(ctx context.Context, userID string) (*model.LoginToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginToken), args.Error(1)
}
