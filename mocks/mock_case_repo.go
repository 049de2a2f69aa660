package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// MockCaseRepo is a mock implementation of port.CaseRepository.
type MockCaseRepo struct {
	mock.Mock
}

func (m *MockCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepo) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseRepo) GetByCode(ctx context.Context, code string) (*domain.Case, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseRepo) List(ctx context.Context, filter port.CaseListFilter, offset, limit int) ([]domain.Case, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Case), args.Int(1), args.Error(2)
}

func (m *MockCaseRepo) Update(ctx context.Context, c *domain.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepo) UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, resolvedAt *time.Time) error {
	args := m.Called(ctx, caseID, status, resolvedAt)
	return args.Error(0)
}

func (m *MockCaseRepo) AddToCurrentPayment(ctx context.Context, caseID uuid.UUID, amount float64) error {
	args := m.Called(ctx, caseID, amount)
	return args.Error(0)
}

func (m *MockCaseRepo) Delete(ctx context.Context, caseID uuid.UUID) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}
