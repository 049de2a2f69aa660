package port

import (
	"context"

	"github.com/google/uuid"

	"markguard/internal/domain"
)

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
	ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Payment, int, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) error
	Delete(ctx context.Context, paymentID uuid.UUID) error
}
