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

type evidenceRepo struct {
	db *sqlx.DB
}

// NewEvidenceRepo creates a new PostgreSQL-backed EvidenceRepository.
func NewEvidenceRepo(db *sqlx.DB) port.EvidenceRepository {
	return &evidenceRepo{db: db}
}

func (r *evidenceRepo) Create(ctx context.Context, f *domain.EvidenceFile) error {
	f.ID = uuid.New()
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evidence_files (id, case_id, uploaded_by, file_name, original_name,
		file_type, file_size, s3_bucket, s3_key, content_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		f.ID, f.CaseID, f.UploadedBy, f.FileName, f.OriginalName,
		f.FileType, f.FileSize, f.S3Bucket, f.S3Key, f.ContentType, f.Status,
		f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("evidenceRepo.Create: %w", err)
	}
	return nil
}

func (r *evidenceRepo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.EvidenceFile, error) {
	var f domain.EvidenceFile
	err := r.db.GetContext(ctx, &f, "SELECT * FROM evidence_files WHERE id = $1", fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("evidenceRepo.GetByID: %w", err)
	}
	return &f, nil
}

func (r *evidenceRepo) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.EvidenceFile, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM evidence_files WHERE case_id = $1 AND status != 'deleted'", caseID)
	if err != nil {
		return nil, 0, fmt.Errorf("evidenceRepo.ListByCase count: %w", err)
	}

	var files []domain.EvidenceFile
	err = r.db.SelectContext(ctx, &files,
		`SELECT * FROM evidence_files WHERE case_id = $1 AND status != 'deleted'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		caseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("evidenceRepo.ListByCase: %w", err)
	}
	return files, total, nil
}

func (r *evidenceRepo) UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.EvidenceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE evidence_files SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), fileID)
	if err != nil {
		return fmt.Errorf("evidenceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *evidenceRepo) Delete(ctx context.Context, fileID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM evidence_files WHERE id = $1", fileID)
	if err != nil {
		return fmt.Errorf("evidenceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
