package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// CreateInteractionInput is the DTO for logging an interaction on a case.
type CreateInteractionInput struct {
	CaseID     uuid.UUID              `json:"case_id" binding:"required"`
	Kind       domain.InteractionKind `json:"kind" binding:"required"`
	Message    string                 `json:"message" binding:"required"`
	FollowUpAt *time.Time             `json:"follow_up_at"`
}

// InteractionService defines the case interaction log contract.
type InteractionService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInteractionInput) (*domain.Interaction, error)
	ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Interaction, int, error)
	Delete(ctx context.Context, interactionID uuid.UUID) error
}

type interactionService struct {
	repo     port.InteractionRepository
	caseRepo port.CaseRepository
}

// NewInteractionService creates a new InteractionService implementation.
func NewInteractionService(repo port.InteractionRepository, caseRepo port.CaseRepository) InteractionService {
	return &interactionService{repo: repo, caseRepo: caseRepo}
}

func (s *interactionService) Create(ctx context.Context, userID uuid.UUID, input CreateInteractionInput) (*domain.Interaction, error) {
	if !domain.ValidInteractionKinds[input.Kind] {
		return nil, domain.ErrInvalidInteraction
	}
	if _, err := s.caseRepo.GetByID(ctx, input.CaseID); err != nil {
		return nil, err
	}

	it := &domain.Interaction{
		CaseID:     input.CaseID,
		UserID:     userID,
		Kind:       input.Kind,
		Message:    input.Message,
		FollowUpAt: input.FollowUpAt,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *interactionService) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Interaction, int, error) {
	return s.repo.ListByCase(ctx, caseID, offset, limit)
}

func (s *interactionService) Delete(ctx context.Context, interactionID uuid.UUID) error {
	return s.repo.Delete(ctx, interactionID)
}
