package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"markguard/internal/config"
	"markguard/internal/domain"
	"markguard/internal/service"
	"markguard/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests-only",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "markguard-test",
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	dept := domain.DeptVerificacao
	return &domain.User{
		ID:             uuid.New(),
		Email:          "analyst@markguard.com",
		PasswordHash:   string(hash),
		FullName:       "Test Analyst",
		MainDepartment: &dept,
		IsActive:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, pair)
}

func TestAuthService_Login_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	mockRepo.On("GetByEmail", mock.Anything, "nobody@markguard.com").Return(nil, domain.ErrNotFound)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@markguard.com",
		Password: "whatever-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, pair)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	user.IsActive = false
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
	assert.Nil(t, pair)
}

func TestAuthService_Login_RepoError(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "analyst@markguard.com",
		Password: "correct-password",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, pair)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, domain.DeptVerificacao, *claims.Department)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	// The refresh token carries a different audience and must not pass
	// access-token validation.
	claims, err := svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	claims, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	mockRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, fresh)
}

func TestAuthService_RefreshToken_UserDeactivatedSinceIssue(t *testing.T) {
	mockRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(mockRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.NoError(t, err)

	deactivated := *user
	deactivated.IsActive = false
	mockRepo.On("GetByID", mock.Anything, user.ID).Return(&deactivated, nil)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
	assert.Nil(t, fresh)
}
