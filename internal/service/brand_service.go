package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// CreateBrandInput is the DTO for creating a brand.
type CreateBrandInput struct {
	Name         string `json:"name" binding:"required"`
	OwnerCompany string `json:"owner_company" binding:"required"`
}

// UpdateBrandInput is the DTO for updating a brand.
type UpdateBrandInput struct {
	Name         *string `json:"name"`
	OwnerCompany *string `json:"owner_company"`
	IsActive     *bool   `json:"is_active"`
}

// BrandService defines the brand management contract.
type BrandService interface {
	Create(ctx context.Context, input CreateBrandInput) (*domain.Brand, error)
	GetByID(ctx context.Context, brandID uuid.UUID) (*domain.Brand, error)
	List(ctx context.Context, offset, limit int) ([]domain.Brand, int, error)
	Update(ctx context.Context, brandID uuid.UUID, input UpdateBrandInput) (*domain.Brand, error)
	Delete(ctx context.Context, brandID uuid.UUID) error
}

type brandService struct {
	repo     port.BrandRepository
	caseRepo port.CaseRepository
}

// NewBrandService creates a new BrandService implementation.
func NewBrandService(repo port.BrandRepository, caseRepo port.CaseRepository) BrandService {
	return &brandService{repo: repo, caseRepo: caseRepo}
}

func (s *brandService) Create(ctx context.Context, input CreateBrandInput) (*domain.Brand, error) {
	brand := &domain.Brand{
		Name:         input.Name,
		OwnerCompany: input.OwnerCompany,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) GetByID(ctx context.Context, brandID uuid.UUID) (*domain.Brand, error) {
	return s.repo.GetByID(ctx, brandID)
}

func (s *brandService) List(ctx context.Context, offset, limit int) ([]domain.Brand, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *brandService) Update(ctx context.Context, brandID uuid.UUID, input UpdateBrandInput) (*domain.Brand, error) {
	brand, err := s.repo.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		brand.Name = *input.Name
	}
	if input.OwnerCompany != nil {
		brand.OwnerCompany = *input.OwnerCompany
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Delete(ctx context.Context, brandID uuid.UUID) error {
	// A brand with cases attached cannot be removed.
	_, total, err := s.caseRepo.List(ctx, port.CaseListFilter{BrandID: &brandID}, 0, 1)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}
	if total > 0 {
		return domain.ErrBrandInUse
	}
	return s.repo.Delete(ctx, brandID)
}
