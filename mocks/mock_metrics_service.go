package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
)

// MockMetricsService is a mock implementation of service.MetricsService.
type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) ComputeMetrics(ctx context.Context, caller domain.Caller, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	args := m.Called(ctx, caller, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetricsBundle), args.Error(1)
}

func (m *MockMetricsService) ComputeDashboard(ctx context.Context, dashboard domain.DashboardType, callerID uuid.UUID, filter domain.MetricsFilter) (*domain.MetricsBundle, error) {
	args := m.Called(ctx, dashboard, callerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetricsBundle), args.Error(1)
}
