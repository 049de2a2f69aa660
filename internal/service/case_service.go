package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// CreateCaseInput is the DTO for opening a case.
type CreateCaseInput struct {
	Code        string              `json:"code"`
	DebtorName  string              `json:"debtor_name" binding:"required"`
	DebtorState string              `json:"debtor_state" binding:"required,len=2"`
	AssignedTo  uuid.UUID           `json:"assigned_to" binding:"required"`
	BrandID     *uuid.UUID          `json:"brand_id"`
	Priority    domain.CasePriority `json:"priority"`
	SourceURL   string              `json:"source_url"`
	TotalAmount float64             `json:"total_amount" binding:"gte=0"`
}

// UpdateCaseInput is the DTO for updating case details. Status changes go
// through ChangeStatus so resolution timestamps stay consistent.
type UpdateCaseInput struct {
	DebtorName  *string              `json:"debtor_name"`
	DebtorState *string              `json:"debtor_state"`
	AssignedTo  *uuid.UUID           `json:"assigned_to"`
	BrandID     *uuid.UUID           `json:"brand_id"`
	Priority    *domain.CasePriority `json:"priority"`
	SourceURL   *string              `json:"source_url"`
	TotalAmount *float64             `json:"total_amount"`
}

// CaseService defines the case management contract.
type CaseService interface {
	Create(ctx context.Context, input CreateCaseInput) (*domain.Case, error)
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	List(ctx context.Context, filter port.CaseListFilter, offset, limit int) ([]domain.Case, int, error)
	Update(ctx context.Context, caseID uuid.UUID, input UpdateCaseInput) (*domain.Case, error)
	ChangeStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus) (*domain.Case, error)
	Delete(ctx context.Context, caseID uuid.UUID) error
}

type caseService struct {
	repo port.CaseRepository
	now  func() time.Time
}

// NewCaseService creates a new CaseService implementation.
func NewCaseService(repo port.CaseRepository) CaseService {
	return &caseService{repo: repo, now: time.Now}
}

func (s *caseService) Create(ctx context.Context, input CreateCaseInput) (*domain.Case, error) {
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !domain.ValidCasePriorities[input.Priority] {
		return nil, domain.ErrInvalidPriority
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		code = generateCaseCode(s.now())
	}

	c := &domain.Case{
		Code:        code,
		DebtorName:  input.DebtorName,
		DebtorState: strings.ToUpper(input.DebtorState),
		AssignedTo:  input.AssignedTo,
		BrandID:     input.BrandID,
		Status:      domain.CaseStatusNew,
		Priority:    input.Priority,
		SourceURL:   input.SourceURL,
		TotalAmount: input.TotalAmount,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *caseService) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	return s.repo.GetByID(ctx, caseID)
}

func (s *caseService) List(ctx context.Context, filter port.CaseListFilter, offset, limit int) ([]domain.Case, int, error) {
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *caseService) Update(ctx context.Context, caseID uuid.UUID, input UpdateCaseInput) (*domain.Case, error) {
	c, err := s.repo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if input.DebtorName != nil {
		c.DebtorName = *input.DebtorName
	}
	if input.DebtorState != nil {
		c.DebtorState = strings.ToUpper(*input.DebtorState)
	}
	if input.AssignedTo != nil {
		c.AssignedTo = *input.AssignedTo
	}
	if input.BrandID != nil {
		c.BrandID = input.BrandID
	}
	if input.Priority != nil {
		if !domain.ValidCasePriorities[*input.Priority] {
			return nil, domain.ErrInvalidPriority
		}
		c.Priority = *input.Priority
	}
	if input.SourceURL != nil {
		c.SourceURL = *input.SourceURL
	}
	if input.TotalAmount != nil {
		c.TotalAmount = *input.TotalAmount
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *caseService) ChangeStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus) (*domain.Case, error) {
	if !domain.ValidCaseStatuses[status] {
		return nil, domain.ErrInvalidCaseStatus
	}

	// resolved_at marks the first transition into resolved and is cleared
	// if the case reopens.
	var resolvedAt *time.Time
	if status == domain.CaseStatusResolved {
		now := s.now().UTC()
		resolvedAt = &now
	}
	if err := s.repo.UpdateStatus(ctx, caseID, status, resolvedAt); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, caseID)
}

func (s *caseService) Delete(ctx context.Context, caseID uuid.UUID) error {
	return s.repo.Delete(ctx, caseID)
}

// generateCaseCode builds a human-readable unique case code, e.g.
// MG-2026-7F3A2B1C.
func generateCaseCode(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("MG-%d-%s", t.Year(), suffix)
}
