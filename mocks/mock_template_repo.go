package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
)

// MockTemplateRepo is a mock implementation of port.TemplateRepository.
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Create(ctx context.Context, t *domain.NotificationTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTemplateRepo) GetByID(ctx context.Context, templateID uuid.UUID) (*domain.NotificationTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationTemplate), args.Error(1)
}

func (m *MockTemplateRepo) List(ctx context.Context, kind *domain.TemplateKind, offset, limit int) ([]domain.NotificationTemplate, int, error) {
	args := m.Called(ctx, kind, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.NotificationTemplate), args.Int(1), args.Error(2)
}

func (m *MockTemplateRepo) Update(ctx context.Context, t *domain.NotificationTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTemplateRepo) Delete(ctx context.Context, templateID uuid.UUID) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}
