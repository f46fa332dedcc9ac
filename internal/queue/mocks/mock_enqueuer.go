package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueThumbnail(ctx context.Context, userID, fileID string) error {
	args := m.Called(ctx, userID, fileID)
	return args.Error(0)
}
