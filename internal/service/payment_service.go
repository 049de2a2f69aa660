package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// CreatePaymentInput is the DTO for registering a payment on a case.
type CreatePaymentInput struct {
	CaseID  uuid.UUID  `json:"case_id" binding:"required"`
	Amount  float64    `json:"amount" binding:"required,gt=0"`
	DueDate *time.Time `json:"due_date"`
}

// UpdatePaymentStatusInput is the DTO for moving a payment through its
// lifecycle.
type UpdatePaymentStatusInput struct {
	Status domain.PaymentStatus `json:"status" binding:"required"`
}

// PaymentService defines the payment management contract.
type PaymentService interface {
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
	ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Payment, int, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) (*domain.Payment, error)
	Delete(ctx context.Context, paymentID uuid.UUID) error
}

type paymentService struct {
	repo     port.PaymentRepository
	caseRepo port.CaseRepository
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(repo port.PaymentRepository, caseRepo port.CaseRepository) PaymentService {
	return &paymentService{repo: repo, caseRepo: caseRepo}
}

func (s *paymentService) Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error) {
	// The case must exist before an installment attaches to it.
	if _, err := s.caseRepo.GetByID(ctx, input.CaseID); err != nil {
		return nil, err
	}

	p := &domain.Payment{
		CaseID:  input.CaseID,
		Amount:  input.Amount,
		Status:  domain.PaymentStatusPending,
		DueDate: input.DueDate,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	return s.repo.GetByID(ctx, paymentID)
}

func (s *paymentService) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Payment, int, error) {
	return s.repo.ListByCase(ctx, caseID, offset, limit)
}

func (s *paymentService) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) (*domain.Payment, error) {
	if !domain.ValidPaymentStatuses[status] {
		return nil, domain.ErrInvalidPaymentStatus
	}

	p, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	wasPaid := p.Status == domain.PaymentStatusPaid
	if err := s.repo.UpdateStatus(ctx, paymentID, status); err != nil {
		return nil, err
	}

	// The case's running indemnification total follows paid installments.
	if status == domain.PaymentStatusPaid && !wasPaid {
		if err := s.caseRepo.AddToCurrentPayment(ctx, p.CaseID, p.Amount); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, paymentID)
}

func (s *paymentService) Delete(ctx context.Context, paymentID uuid.UUID) error {
	return s.repo.Delete(ctx, paymentID)
}
