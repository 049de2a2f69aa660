package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"markguard/internal/config"
	"markguard/internal/domain"
	"markguard/internal/port"
)

// EvidenceUploadInput is the DTO for evidence upload requests.
type EvidenceUploadInput struct {
	CaseID     uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// EvidenceService defines the case evidence attachment contract.
type EvidenceService interface {
	Upload(ctx context.Context, input EvidenceUploadInput) (*domain.EvidenceFile, error)
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.EvidenceFile, error)
	ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.EvidenceFile, int, error)
	GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error)
	Delete(ctx context.Context, fileID uuid.UUID) error
}

type evidenceService struct {
	repo     port.EvidenceRepository
	caseRepo port.CaseRepository
	storage  port.ObjectStorage
	cfg      *config.S3Config
}

// NewEvidenceService creates a new EvidenceService implementation.
func NewEvidenceService(
	repo port.EvidenceRepository,
	caseRepo port.CaseRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) EvidenceService {
	return &evidenceService{
		repo:     repo,
		caseRepo: caseRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *evidenceService) Upload(ctx context.Context, input EvidenceUploadInput) (*domain.EvidenceFile, error) {
	if _, err := s.caseRepo.GetByID(ctx, input.CaseID); err != nil {
		return nil, err
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedEvidenceExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if _, validContent := domain.AllowedEvidenceContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	fileID := uuid.New()
	s3Key := fmt.Sprintf("cases/%s/evidence/%s/%s", input.CaseID, fileID, input.Header.Filename)
	contentType := domain.EvidenceContentTypes[fileType]

	ev := &domain.EvidenceFile{
		ID:           fileID,
		CaseID:       input.CaseID,
		UploadedBy:   input.UploadedBy,
		FileName:     fileID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.EvidenceStatusPending,
	}

	log.Printf("evidenceService.Upload: uploading %s (%s, %d bytes) for case %s by user %s",
		input.Header.Filename, contentType, input.Header.Size, input.CaseID, input.UploadedBy)

	// Persist metadata with pending status
	if err := s.repo.Create(ctx, ev); err != nil {
		log.Printf("evidenceService.Upload: failed to create evidence metadata: %v", err)
		return nil, fmt.Errorf("creating evidence metadata: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("evidenceService.Upload: S3 upload failed for file %s: %v", ev.ID, err)
		_ = s.repo.UpdateStatus(ctx, ev.ID, domain.EvidenceStatusDeleted)
		return nil, domain.ErrUploadFailed
	}

	if err := s.repo.UpdateStatus(ctx, ev.ID, domain.EvidenceStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating evidence status: %w", err)
	}
	ev.Status = domain.EvidenceStatusUploaded

	return ev, nil
}

func (s *evidenceService) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.EvidenceFile, error) {
	return s.repo.GetByID(ctx, fileID)
}

func (s *evidenceService) ListByCase(ctx context.Context, caseID uuid.UUID, offset, limit int) ([]domain.EvidenceFile, int, error) {
	return s.repo.ListByCase(ctx, caseID, offset, limit)
}

func (s *evidenceService) GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	ev, err := s.repo.GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, ev.S3Bucket, ev.S3Key, s.cfg.PresignExpiry)
}

func (s *evidenceService) Delete(ctx context.Context, fileID uuid.UUID) error {
	ev, err := s.repo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, ev.S3Bucket, ev.S3Key); err != nil {
		log.Printf("evidenceService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}

	if err := s.repo.UpdateStatus(ctx, fileID, domain.EvidenceStatusDeleted); err != nil {
		return err
	}
	return nil
}
