package port

import (
	"context"

	"github.com/google/uuid"

	"markguard/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// BrandRepository defines the contract for brand persistence.
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, brandID uuid.UUID) (*domain.Brand, error)
	List(ctx context.Context, offset, limit int) ([]domain.Brand, int, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, brandID uuid.UUID) error
}
