package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"markguard/internal/domain"
	"markguard/internal/port"
)

// CreateUserInput is the DTO for creating a user. Password is optional;
// when absent a temporary password is generated and emailed.
type CreateUserInput struct {
	Email          string                `json:"email" binding:"required,email"`
	Password       string                `json:"password" binding:"omitempty,min=8"`
	FullName       string                `json:"full_name" binding:"required"`
	IsAdmin        bool                  `json:"is_admin"`
	IsClient       bool                  `json:"is_client"`
	MainDepartment *domain.Department    `json:"main_department"`
	ClientProfile  *domain.ClientProfile `json:"client_profile"`
	Company        string                `json:"company"`
}

// UpdateUserInput is the DTO for updating a user.
type UpdateUserInput struct {
	Email          *string               `json:"email"`
	FullName       *string               `json:"full_name"`
	IsAdmin        *bool                 `json:"is_admin"`
	IsClient       *bool                 `json:"is_client"`
	MainDepartment *domain.Department    `json:"main_department"`
	ClientProfile  *domain.ClientProfile `json:"client_profile"`
	Company        *string               `json:"company"`
	IsActive       *bool                 `json:"is_active"`
}

// UserService defines the user management contract.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo        port.UserRepository
	emailSender port.EmailSender
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository, emailSender port.EmailSender) UserService {
	return &userService{repo: repo, emailSender: emailSender}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.MainDepartment != nil && !domain.ValidDepartments[*input.MainDepartment] {
		return nil, domain.ErrInvalidDepartment
	}
	if input.ClientProfile != nil && !domain.ValidClientProfiles[*input.ClientProfile] {
		return nil, domain.ErrInvalidProfile
	}

	password := input.Password
	generated := password == ""
	if generated {
		p, err := generateTempPassword()
		if err != nil {
			return nil, fmt.Errorf("generating temp password: %w", err)
		}
		password = p
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Email:          input.Email,
		PasswordHash:   string(hash),
		FullName:       input.FullName,
		IsAdmin:        input.IsAdmin,
		IsClient:       input.IsClient,
		MainDepartment: input.MainDepartment,
		ClientProfile:  input.ClientProfile,
		Company:        input.Company,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if generated {
		if err := s.emailSender.SendWelcomeEmail(ctx, user.Email, user.FullName, password); err != nil {
			// Account exists either way; the admin can reset credentials.
			log.Printf("WARNING: failed to send welcome email to %s: %v", user.Email, err)
		}
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.IsClient != nil {
		user.IsClient = *input.IsClient
	}
	if input.MainDepartment != nil {
		if !domain.ValidDepartments[*input.MainDepartment] {
			return nil, domain.ErrInvalidDepartment
		}
		user.MainDepartment = input.MainDepartment
	}
	if input.ClientProfile != nil {
		if !domain.ValidClientProfiles[*input.ClientProfile] {
			return nil, domain.ErrInvalidProfile
		}
		user.ClientProfile = input.ClientProfile
	}
	if input.Company != nil {
		user.Company = *input.Company
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.repo.Delete(ctx, userID)
}

func generateTempPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
