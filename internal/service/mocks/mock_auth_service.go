package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Connect(ctx context.Context, authorization string) (string, error) {
	args := m.Called(ctx, authorization)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Disconnect(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Resolve(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}
