package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
)

// MockBrandRepo is a mock implementation of port.BrandRepository.
type MockBrandRepo struct {
	mock.Mock
}

func (m *MockBrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepo) GetByID(ctx context.Context, brandID uuid.UUID) (*domain.Brand, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandRepo) List(ctx context.Context, offset, limit int) ([]domain.Brand, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Brand), args.Int(1), args.Error(2)
}

func (m *MockBrandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepo) Delete(ctx context.Context, brandID uuid.UUID) error {
	args := m.Called(ctx, brandID)
	return args.Error(0)
}
