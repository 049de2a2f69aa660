package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/service"
)

// MockEvidenceService is a mock implementation of service.EvidenceService.
type MockEvidenceService struct {
	mock.Mock
}

func (m *MockEvidenceService) Upload(ctx context.Context, input service.EvidenceUploadInput) (*domain.EvidenceFile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvidenceFile), args.Error(1)
}

func (m *MockEvidenceService) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.EvidenceFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvidenceFile), args.Error(1)
}

func (m *MockEvidenceService) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.EvidenceFile, int, error) {
	args := m.Called(ctx, caseID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.EvidenceFile), args.Int(1), args.Error(2)
}

func (m *MockEvidenceService) GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	args := m.Called(ctx, fileID)
	return args.String(0), args.Error(1)
}

func (m *MockEvidenceService) Delete(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
