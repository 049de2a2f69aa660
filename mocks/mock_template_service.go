package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/service"
)

// MockTemplateService is a mock implementation of service.TemplateService.
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) Create(ctx context.Context, createdBy uuid.UUID, input service.CreateTemplateInput) (*domain.NotificationTemplate, error) {
	args := m.Called(ctx, createdBy, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationTemplate), args.Error(1)
}

func (m *MockTemplateService) GetByID(ctx context.Context, templateID uuid.UUID) (*domain.NotificationTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationTemplate), args.Error(1)
}

func (m *MockTemplateService) List(ctx context.Context, kind *domain.TemplateKind, offset, limit int) ([]domain.NotificationTemplate, int, error) {
	args := m.Called(ctx, kind, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.NotificationTemplate), args.Int(1), args.Error(2)
}

func (m *MockTemplateService) Update(ctx context.Context, templateID uuid.UUID, input service.UpdateTemplateInput) (*domain.NotificationTemplate, error) {
	args := m.Called(ctx, templateID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationTemplate), args.Error(1)
}

func (m *MockTemplateService) Delete(ctx context.Context, templateID uuid.UUID) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}
