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

type templateRepo struct {
	db *sqlx.DB
}

// NewTemplateRepo creates a new PostgreSQL-backed TemplateRepository.
func NewTemplateRepo(db *sqlx.DB) port.TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, t *domain.NotificationTemplate) error {
	t.ID = uuid.New()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notification_templates (id, name, kind, subject, body, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Name, t.Kind, t.Subject, t.Body, t.IsActive, t.CreatedBy, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("templateRepo.Create: %w", err)
	}
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, templateID uuid.UUID) (*domain.NotificationTemplate, error) {
	var t domain.NotificationTemplate
	err := r.db.GetContext(ctx, &t, "SELECT * FROM notification_templates WHERE id = $1", templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("templateRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *templateRepo) List(ctx context.Context, kind *domain.TemplateKind, offset, limit int) ([]domain.NotificationTemplate, int, error) {
	whereClause := ""
	args := []interface{}{}
	if kind != nil {
		whereClause = "WHERE kind = $1"
		args = append(args, *kind)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM notification_templates %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("templateRepo.List count: %w", err)
	}

	dataQuery := fmt.Sprintf(
		"SELECT * FROM notification_templates %s ORDER BY name ASC OFFSET %d LIMIT %d",
		whereClause, offset, limit)
	var templates []domain.NotificationTemplate
	if err := r.db.SelectContext(ctx, &templates, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("templateRepo.List: %w", err)
	}
	return templates, total, nil
}

func (r *templateRepo) Update(ctx context.Context, t *domain.NotificationTemplate) error {
	t.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE notification_templates SET name = $1, kind = $2, subject = $3, body = $4,
		is_active = $5, updated_at = $6 WHERE id = $7`,
		t.Name, t.Kind, t.Subject, t.Body, t.IsActive, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("templateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *templateRepo) Delete(ctx context.Context, templateID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notification_templates WHERE id = $1", templateID)
	if err != nil {
		return fmt.Errorf("templateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
