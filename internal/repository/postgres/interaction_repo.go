package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"markguard/internal/domain"
	"markguard/internal/port"
)

type interactionRepo struct {
	db *sqlx.DB
}

// NewInteractionRepo creates a new PostgreSQL-backed InteractionRepository.
func NewInteractionRepo(db *sqlx.DB) port.InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) Create(ctx context.Context, it *domain.Interaction) error {
	it.ID = uuid.New()
	it.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO interactions (id, case_id, user_id, kind, message, follow_up_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		it.ID, it.CaseID, it.UserID, it.Kind, it.Message, it.FollowUpAt, it.CreatedAt)
	if err != nil {
		return fmt.Errorf("interactionRepo.Create: %w", err)
	}
	return nil
}

func (r *interactionRepo) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Interaction, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM interactions WHERE case_id = $1", caseID)
	if err != nil {
		return nil, 0, fmt.Errorf("interactionRepo.ListByCase count: %w", err)
	}

	var interactions []domain.Interaction
	err = r.db.SelectContext(ctx, &interactions,
		"SELECT * FROM interactions WHERE case_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		caseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("interactionRepo.ListByCase: %w", err)
	}
	return interactions, total, nil
}

func (r *interactionRepo) Delete(ctx context.Context, interactionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM interactions WHERE id = $1", interactionID)
	if err != nil {
		return fmt.Errorf("interactionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
