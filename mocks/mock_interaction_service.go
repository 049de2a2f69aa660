package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/service"
)

// MockInteractionService is a mock implementation of service.InteractionService.
type MockInteractionService struct {
	mock.Mock
}

func (m *MockInteractionService) Create(ctx context.Context, userID uuid.UUID, input service.CreateInteractionInput) (*domain.Interaction, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interaction), args.Error(1)
}

func (m *MockInteractionService) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Interaction, int, error) {
	args := m.Called(ctx, caseID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Interaction), args.Int(1), args.Error(2)
}

func (m *MockInteractionService) Delete(ctx context.Context, interactionID uuid.UUID) error {
	args := m.Called(ctx, interactionID)
	return args.Error(0)
}
