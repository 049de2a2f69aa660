package port

import (
	"context"

	"github.com/google/uuid"

	"markguard/internal/domain"
)

// TemplateRepository defines the contract for notification template persistence.
type TemplateRepository interface {
	Create(ctx context.Context, t *domain.NotificationTemplate) error
	GetByID(ctx context.Context, templateID uuid.UUID) (*domain.NotificationTemplate, error)
	List(ctx context.Context, kind *domain.TemplateKind, offset, limit int) ([]domain.NotificationTemplate, int, error)
	Update(ctx context.Context, t *domain.NotificationTemplate) error
	Delete(ctx context.Context, templateID uuid.UUID) error
}
