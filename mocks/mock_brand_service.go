package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/service"
)

// MockBrandService is a mock implementation of service.BrandService.
type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) Create(ctx context.Context, input service.CreateBrandInput) (*domain.Brand, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandService) GetByID(ctx context.Context, brandID uuid.UUID) (*domain.Brand, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandService) List(ctx context.Context, offset, limit int) ([]domain.Brand, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Brand), args.Int(1), args.Error(2)
}

func (m *MockBrandService) Update(ctx context.Context, brandID uuid.UUID, input service.UpdateBrandInput) (*domain.Brand, error) {
	args := m.Called(ctx, brandID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandService) Delete(ctx context.Context, brandID uuid.UUID) error {
	args := m.Called(ctx, brandID)
	return args.Error(0)
}
