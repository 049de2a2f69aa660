package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
)

// MockMetricsRepo is a mock implementation of port.MetricsRepository.
type MockMetricsRepo struct {
	mock.Mock
}

func (m *MockMetricsRepo) CountCases(ctx context.Context, q *domain.CaseQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockMetricsRepo) CountPayments(ctx context.Context, q *domain.PaymentQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockMetricsRepo) SumPayments(ctx context.Context, q *domain.PaymentQuery) (float64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockMetricsRepo) AvgPaymentAmount(ctx context.Context, q *domain.PaymentQuery) (float64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockMetricsRepo) CountInteractions(ctx context.Context, q *domain.InteractionQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockMetricsRepo) AvgResolutionDays(ctx context.Context, q *domain.CaseQuery) (float64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockMetricsRepo) AvgDecisionDays(ctx context.Context, q *domain.CaseQuery) (float64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockMetricsRepo) CasesByUser(ctx context.Context, q *domain.CaseQuery) ([]domain.UserCaseCount, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCaseCount), args.Error(1)
}

func (m *MockMetricsRepo) CasesByBrand(ctx context.Context, q *domain.CaseQuery) ([]domain.BrandCaseCount, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BrandCaseCount), args.Error(1)
}

func (m *MockMetricsRepo) CasesByState(ctx context.Context, q *domain.CaseQuery) ([]domain.StateBreakdown, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StateBreakdown), args.Error(1)
}

func (m *MockMetricsRepo) TopAnalysts(ctx context.Context, q *domain.CaseQuery, limit int) ([]domain.AnalystRanking, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalystRanking), args.Error(1)
}
