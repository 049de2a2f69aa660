package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"markguard/internal/domain"
	"markguard/internal/port"
)

type caseRepo struct {
	db *sqlx.DB
}

// NewCaseRepo creates a new PostgreSQL-backed CaseRepository.
func NewCaseRepo(db *sqlx.DB) port.CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) Create(ctx context.Context, c *domain.Case) error {
	c.ID = uuid.New()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO cases (id, code, debtor_name, debtor_state, assigned_to, brand_id,
		status, priority, source_url, total_amount, current_payment, resolved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Code, c.DebtorName, c.DebtorState, c.AssignedTo, c.BrandID,
		c.Status, c.Priority, c.SourceURL, c.TotalAmount, c.CurrentPayment,
		c.ResolvedAt, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateCaseCode
		}
		return fmt.Errorf("caseRepo.Create: %w", err)
	}
	return nil
}

func (r *caseRepo) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	var c domain.Case
	err := r.db.GetContext(ctx, &c, "SELECT * FROM cases WHERE id = $1", caseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("caseRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *caseRepo) GetByCode(ctx context.Context, code string) (*domain.Case, error) {
	var c domain.Case
	err := r.db.GetContext(ctx, &c, "SELECT * FROM cases WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("caseRepo.GetByCode: %w", err)
	}
	return &c, nil
}

// buildListWhere constructs a dynamic WHERE clause for case listings.
func buildListWhere(filter port.CaseListFilter) (clause string, args []interface{}) {
	var conds []string
	argN := 1

	add := func(cond string, val interface{}) {
		conds = append(conds, fmt.Sprintf(cond, argN))
		args = append(args, val)
		argN++
	}

	if filter.AssignedTo != nil {
		add("assigned_to = $%d", *filter.AssignedTo)
	}
	if filter.BrandID != nil {
		add("brand_id = $%d", *filter.BrandID)
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}
	if filter.Priority != nil {
		add("priority = $%d", *filter.Priority)
	}
	if filter.DateFrom != nil {
		add("created_at >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("created_at <= $%d", *filter.DateTo)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *caseRepo) List(ctx context.Context, filter port.CaseListFilter, offset, limit int) ([]domain.Case, int, error) {
	whereClause, args := buildListWhere(filter)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM cases %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("caseRepo.List count: %w", err)
	}

	dataQuery := fmt.Sprintf(
		"SELECT * FROM cases %s ORDER BY created_at DESC OFFSET %d LIMIT %d",
		whereClause, offset, limit)
	var cases []domain.Case
	if err := r.db.SelectContext(ctx, &cases, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("caseRepo.List: %w", err)
	}
	return cases, total, nil
}

func (r *caseRepo) Update(ctx context.Context, c *domain.Case) error {
	c.UpdatedAt = time.Now().UTC()
	query := `UPDATE cases SET debtor_name = $1, debtor_state = $2, assigned_to = $3, brand_id = $4,
		priority = $5, source_url = $6, total_amount = $7, updated_at = $8 WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		c.DebtorName, c.DebtorState, c.AssignedTo, c.BrandID,
		c.Priority, c.SourceURL, c.TotalAmount, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("caseRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *caseRepo) UpdateStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus, resolvedAt *time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE cases SET status = $1, resolved_at = $2, updated_at = $3 WHERE id = $4",
		status, resolvedAt, time.Now().UTC(), caseID)
	if err != nil {
		return fmt.Errorf("caseRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *caseRepo) AddToCurrentPayment(ctx context.Context, caseID uuid.UUID, amount float64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE cases SET current_payment = current_payment + $1, updated_at = $2 WHERE id = $3",
		amount, time.Now().UTC(), caseID)
	if err != nil {
		return fmt.Errorf("caseRepo.AddToCurrentPayment: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *caseRepo) Delete(ctx context.Context, caseID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cases WHERE id = $1", caseID)
	if err != nil {
		return fmt.Errorf("caseRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
