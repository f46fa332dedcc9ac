package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/service"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Status(ctx context.Context) service.Status {
	args := m.Called(ctx)
	return args.Get(0).(service.Status)
}

func (m *MockStatsService) Stats(ctx context.Context) service.Stats {
	args := m.Called(ctx)
	return args.Get(0).(service.Stats)
}
