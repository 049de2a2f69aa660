package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
)

// MockInteractionRepo is a mock implementation of port.InteractionRepository.
type MockInteractionRepo struct {
	mock.Mock
}

func (m *MockInteractionRepo) Create(ctx context.Context, it *domain.Interaction) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockInteractionRepo) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Interaction, int, error) {
	args := m.Called(ctx, caseID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Interaction), args.Int(1), args.Error(2)
}

func (m *MockInteractionRepo) Delete(ctx context.Context, interactionID uuid.UUID) error {
	args := m.Called(ctx, interactionID)
	return args.Error(0)
}
