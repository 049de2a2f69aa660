package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
)

// MockEvidenceRepo is a mock implementation of port.EvidenceRepository.
type MockEvidenceRepo struct {
	mock.Mock
}

func (m *MockEvidenceRepo) Create(ctx context.Context, f *domain.EvidenceFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockEvidenceRepo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.EvidenceFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvidenceFile), args.Error(1)
}

func (m *MockEvidenceRepo) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.EvidenceFile, int, error) {
	args := m.Called(ctx, caseID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.EvidenceFile), args.Int(1), args.Error(2)
}

func (m *MockEvidenceRepo) UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.EvidenceStatus) error {
	args := m.Called(ctx, fileID, status)
	return args.Error(0)
}

func (m *MockEvidenceRepo) Delete(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
