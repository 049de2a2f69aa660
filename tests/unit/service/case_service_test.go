package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/service"
	"markguard/mocks"
)

func TestCaseService_Create_DefaultsAndGeneratedCode(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Case) bool {
		return c.Status == domain.CaseStatusNew &&
			c.Priority == domain.PriorityMedium &&
			c.DebtorState == "SP" &&
			strings.HasPrefix(c.Code, "MG-")
	})).Return(nil)

	created, err := svc.Create(context.Background(), service.CreateCaseInput{
		DebtorName:  "Loja Falsa LTDA",
		DebtorState: "sp",
		AssignedTo:  uuid.New(),
		TotalAmount: 1500,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.CaseStatusNew, created.Status)
	mockRepo.AssertExpectations(t)
}

func TestCaseService_Create_KeepsExplicitCode(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Case) bool {
		return c.Code == "MG-2026-CUSTOM01"
	})).Return(nil)

	_, err := svc.Create(context.Background(), service.CreateCaseInput{
		Code:        "MG-2026-CUSTOM01",
		DebtorName:  "Loja Falsa LTDA",
		DebtorState: "RJ",
		AssignedTo:  uuid.New(),
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCaseService_Create_InvalidPriority(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	created, err := svc.Create(context.Background(), service.CreateCaseInput{
		DebtorName:  "Loja Falsa LTDA",
		DebtorState: "SP",
		AssignedTo:  uuid.New(),
		Priority:    "extreme",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Nil(t, created)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaseService_ChangeStatus_ResolvedSetsTimestamp(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	caseID := uuid.New()
	mockRepo.On("UpdateStatus", mock.Anything, caseID, domain.CaseStatusResolved,
		mock.MatchedBy(func(resolvedAt *time.Time) bool { return resolvedAt != nil })).Return(nil)
	mockRepo.On("GetByID", mock.Anything, caseID).
		Return(&domain.Case{ID: caseID, Status: domain.CaseStatusResolved}, nil)

	updated, err := svc.ChangeStatus(context.Background(), caseID, domain.CaseStatusResolved)
	assert.NoError(t, err)
	assert.Equal(t, domain.CaseStatusResolved, updated.Status)
	mockRepo.AssertExpectations(t)
}

func TestCaseService_ChangeStatus_NonResolvedClearsTimestamp(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	caseID := uuid.New()
	mockRepo.On("UpdateStatus", mock.Anything, caseID, domain.CaseStatusInNegotiation,
		(*time.Time)(nil)).Return(nil)
	mockRepo.On("GetByID", mock.Anything, caseID).
		Return(&domain.Case{ID: caseID, Status: domain.CaseStatusInNegotiation}, nil)

	_, err := svc.ChangeStatus(context.Background(), caseID, domain.CaseStatusInNegotiation)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCaseService_ChangeStatus_InvalidStatus(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	updated, err := svc.ChangeStatus(context.Background(), uuid.New(), "escalated")
	assert.ErrorIs(t, err, domain.ErrInvalidCaseStatus)
	assert.Nil(t, updated)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCaseService_Update_PartialPatch(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	caseID := uuid.New()
	existing := &domain.Case{ID: caseID, DebtorName: "Old", DebtorState: "SP", Priority: domain.PriorityLow}
	mockRepo.On("GetByID", mock.Anything, caseID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Case) bool {
		return c.DebtorState == "MG" && c.DebtorName == "Old" && c.Priority == domain.PriorityUrgent
	})).Return(nil)

	state := "mg"
	priority := domain.PriorityUrgent
	updated, err := svc.Update(context.Background(), caseID, service.UpdateCaseInput{
		DebtorState: &state,
		Priority:    &priority,
	})
	assert.NoError(t, err)
	assert.Equal(t, "MG", updated.DebtorState)
	mockRepo.AssertExpectations(t)
}

func TestCaseService_Update_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockCaseRepo)
	svc := service.NewCaseService(mockRepo)

	caseID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, caseID).Return(nil, domain.ErrNotFound)

	updated, err := svc.Update(context.Background(), caseID, service.UpdateCaseInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, updated)
}
