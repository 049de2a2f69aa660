package service

import (
	"context"

	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// CreateTemplateInput is the DTO for creating a notification template.
type CreateTemplateInput struct {
	Name    string              `json:"name" binding:"required"`
	Kind    domain.TemplateKind `json:"kind" binding:"required"`
	Subject string              `json:"subject" binding:"required"`
	Body    string              `json:"body" binding:"required"`
}

// UpdateTemplateInput is the DTO for updating a notification template.
type UpdateTemplateInput struct {
	Name     *string `json:"name"`
	Subject  *string `json:"subject"`
	Body     *string `json:"body"`
	IsActive *bool   `json:"is_active"`
}

// TemplateService defines the notification template contract.
type TemplateService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateTemplateInput) (*domain.NotificationTemplate, error)
	GetByID(ctx context.Context, templateID uuid.UUID) (*domain.NotificationTemplate, error)
	List(ctx context.Context, kind *domain.TemplateKind, offset, limit int) ([]domain.NotificationTemplate, int, error)
	Update(ctx context.Context, templateID uuid.UUID, input UpdateTemplateInput) (*domain.NotificationTemplate, error)
	Delete(ctx context.Context, templateID uuid.UUID) error
}

type templateService struct {
	repo port.TemplateRepository
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(repo port.TemplateRepository) TemplateService {
	return &templateService{repo: repo}
}

func (s *templateService) Create(ctx context.Context, createdBy uuid.UUID, input CreateTemplateInput) (*domain.NotificationTemplate, error) {
	if !domain.ValidTemplateKinds[input.Kind] {
		return nil, domain.ErrInvalidTemplateKind
	}

	t := &domain.NotificationTemplate{
		Name:      input.Name,
		Kind:      input.Kind,
		Subject:   input.Subject,
		Body:      input.Body,
		IsActive:  true,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *templateService) GetByID(ctx context.Context, templateID uuid.UUID) (*domain.NotificationTemplate, error) {
	return s.repo.GetByID(ctx, templateID)
}

func (s *templateService) List(ctx context.Context, kind *domain.TemplateKind, offset, limit int) ([]domain.NotificationTemplate, int, error) {
	if kind != nil && !domain.ValidTemplateKinds[*kind] {
		return nil, 0, domain.ErrInvalidTemplateKind
	}
	return s.repo.List(ctx, kind, offset, limit)
}

func (s *templateService) Update(ctx context.Context, templateID uuid.UUID, input UpdateTemplateInput) (*domain.NotificationTemplate, error) {
	t, err := s.repo.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Subject != nil {
		t.Subject = *input.Subject
	}
	if input.Body != nil {
		t.Body = *input.Body
	}
	if input.IsActive != nil {
		t.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *templateService) Delete(ctx context.Context, templateID uuid.UUID) error {
	return s.repo.Delete(ctx, templateID)
}
