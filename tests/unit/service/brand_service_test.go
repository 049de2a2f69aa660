package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/port"
	"markguard/internal/service"
	"markguard/mocks"
)

func TestBrandService_Create_StartsActive(t *testing.T) {
	mockRepo := new(mocks.MockBrandRepo)
	mockCaseRepo := new(mocks.MockCaseRepo)
	svc := service.NewBrandService(mockRepo, mockCaseRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
		return b.Name == "Acme" && b.IsActive
	})).Return(nil)

	brand, err := svc.Create(context.Background(), service.CreateBrandInput{Name: "Acme", OwnerCompany: "Acme Corp"})
	assert.NoError(t, err)
	assert.True(t, brand.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestBrandService_Delete_BlockedWhenReferencedByCases(t *testing.T) {
	mockRepo := new(mocks.MockBrandRepo)
	mockCaseRepo := new(mocks.MockCaseRepo)
	svc := service.NewBrandService(mockRepo, mockCaseRepo)

	brandID := uuid.New()
	mockCaseRepo.On("List", mock.Anything, mock.MatchedBy(func(f port.CaseListFilter) bool {
		return f.BrandID != nil && *f.BrandID == brandID
	}), 0, 1).Return([]domain.Case{{ID: uuid.New()}}, 3, nil)

	err := svc.Delete(context.Background(), brandID)
	assert.ErrorIs(t, err, domain.ErrBrandInUse)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBrandService_Delete_UnreferencedBrand(t *testing.T) {
	mockRepo := new(mocks.MockBrandRepo)
	mockCaseRepo := new(mocks.MockCaseRepo)
	svc := service.NewBrandService(mockRepo, mockCaseRepo)

	brandID := uuid.New()
	mockCaseRepo.On("List", mock.Anything, mock.Anything, 0, 1).Return([]domain.Case{}, 0, nil)
	mockRepo.On("Delete", mock.Anything, brandID).Return(nil)

	err := svc.Delete(context.Background(), brandID)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
