package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"markguard/internal/domain"
)

// CaseListFilter narrows case listings. Nil fields impose no constraint.
type CaseListFilter struct {
	AssignedTo *uuid.UUID
	BrandID    *uuid.UUID
	Status     *domain.CaseStatus
	Priority   *domain.CasePriority
	DateFrom   *time.Time
	DateTo     *time.Time
}

// CaseRepository defines the contract for case persistence.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	GetByCode(ctx context.Context, code string) (*domain.Case, error)
	List(ctx context.Context, filter CaseListFilter, offset, limit int) ([]domain.Case, int, error)
	Update(ctx context.Context, c *domain.Case) error
	UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, resolvedAt *time.Time) error
	AddToCurrentPayment(ctx context.Context, caseID uuid.UUID, amount float64) error
	Delete(ctx context.Context, caseID uuid.UUID) error
}
