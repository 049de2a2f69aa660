package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"markguard/internal/domain"
	"markguard/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (id, case_id, amount, status, due_date, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.CaseID, p.Amount, p.Status, p.DueDate, p.PaidAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.GetContext(ctx, &p, "SELECT * FROM payments WHERE id = $1", paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *paymentRepo) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.Payment, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM payments WHERE case_id = $1", caseID)
	if err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.ListByCase count: %w", err)
	}

	var payments []domain.Payment
	err = r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE case_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		caseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.ListByCase: %w", err)
	}
	return payments, total, nil
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) error {
	now := time.Now().UTC()
	var paidAt *time.Time
	if status == domain.PaymentStatusPaid {
		paidAt = &now
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE payments SET status = $1, paid_at = COALESCE($2, paid_at), updated_at = $3 WHERE id = $4",
		status, paidAt, now, paymentID)
	if err != nil {
		return fmt.Errorf("paymentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, paymentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM payments WHERE id = $1", paymentID)
	if err != nil {
		return fmt.Errorf("paymentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
