package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMailer is a testify mock for the mailer.Mailer interface.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
