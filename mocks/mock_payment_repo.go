package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
)

// MockPaymentRepo is a mock implementation of port.PaymentRepository.
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Payment, int, error) {
	args := m.Called(ctx, caseID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Int(1), args.Error(2)
}

func (m *MockPaymentRepo) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) error {
	args := m.Called(ctx, paymentID, status)
	return args.Error(0)
}

func (m *MockPaymentRepo) Delete(ctx context.Context, paymentID uuid.UUID) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}
