package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"markguard/internal/domain"
	"markguard/internal/service"
	"markguard/mocks"
)

func TestUserService_Create_WithExplicitPassword(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	dept := domain.DeptAtendimento
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@markguard.com" && u.IsActive
	})).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:          "new@markguard.com",
		Password:       "explicit-password",
		FullName:       "New Analyst",
		MainDepartment: &dept,
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("explicit-password")))
	mockEmail.AssertNotCalled(t, "SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_GeneratedPasswordSendsWelcomeEmail(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEmail.On("SendWelcomeEmail", mock.Anything, "new@markguard.com", "New Analyst",
		mock.MatchedBy(func(p string) bool { return len(p) == 24 })).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "new@markguard.com",
		FullName: "New Analyst",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	mockEmail.AssertExpectations(t)
}

func TestUserService_Create_EmailFailureDoesNotFailCreate(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEmail.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("ses unavailable"))

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "new@markguard.com",
		FullName: "New Analyst",
	})
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserService_Create_InvalidDepartment(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	dept := domain.Department("marketing")
	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:          "new@markguard.com",
		Password:       "explicit-password",
		FullName:       "New Analyst",
		MainDepartment: &dept,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDepartment)
	assert.Nil(t, user)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_InvalidClientProfile(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	profile := domain.ClientProfile("super")
	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:         "client@example.com",
		Password:      "explicit-password",
		FullName:      "New Client",
		IsClient:      true,
		ClientProfile: &profile,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	assert.Nil(t, user)
}

func TestUserService_Update_AppliesPartialFields(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	userID := uuid.New()
	existing := &domain.User{ID: userID, Email: "old@markguard.com", FullName: "Old Name", IsActive: true}
	mockRepo.On("GetByID", mock.Anything, userID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.FullName == "Renamed" && u.Email == "old@markguard.com" && !u.IsActive
	})).Return(nil)

	name := "Renamed"
	active := false
	updated, err := svc.Update(context.Background(), userID, service.UpdateUserInput{
		FullName: &name,
		IsActive: &active,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FullName)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_InvalidDepartmentRejected(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	userID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)

	dept := domain.Department("marketing")
	updated, err := svc.Update(context.Background(), userID, service.UpdateUserInput{MainDepartment: &dept})
	assert.ErrorIs(t, err, domain.ErrInvalidDepartment)
	assert.Nil(t, updated)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Update_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	mockEmail := new(mocks.MockEmailSender)
	svc := service.NewUserService(mockRepo, mockEmail)

	userID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	updated, err := svc.Update(context.Background(), userID, service.UpdateUserInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, updated)
}
