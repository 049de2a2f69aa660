package port

import (
	"context"

	"github.com/google/uuid"

	"markguard/internal/domain"
)

// InteractionRepository defines the contract for interaction persistence.
type InteractionRepository interface {
	Create(ctx context.Context, it *domain.Interaction) error
	ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Interaction, int, error)
	Delete(ctx context.Context, interactionID uuid.UUID) error
}
