package port

import (
	"context"

	"github.com/google/uuid"

	"markguard/internal/domain"
)

// EvidenceRepository defines the contract for evidence file metadata persistence.
type EvidenceRepository interface {
	Create(ctx context.Context, f *domain.EvidenceFile) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.EvidenceFile, error)
	ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.EvidenceFile, int, error)
	UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.EvidenceStatus) error
	Delete(ctx context.Context, fileID uuid.UUID) error
}
