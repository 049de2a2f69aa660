package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"markguard/internal/config"
	"markguard/internal/domain"
	"markguard/internal/port"
	"markguard/internal/service"
	"markguard/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "us-east-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 50,
		PresignExpiry: 3600,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// pdfContent returns minimal valid PDF bytes.
func pdfContent() []byte {
	return []byte("%PDF-1.4 test content that is at least a few bytes long for detection purposes")
}

// pngContent returns minimal valid PNG bytes (magic bytes).
func pngContent() []byte {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	return append(header, bytes.Repeat([]byte{0x00}, 100)...)
}

func TestEvidenceService_Upload_Success_PDF(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	caseID := uuid.New()
	userID := uuid.New()

	file, header := createMultipartFile("screenshot.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	caseRepo.On("GetByID", mock.Anything, caseID).Return(&domain.Case{ID: caseID}, nil)
	evRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EvidenceFile")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://test-bucket.s3.amazonaws.com/test", ETag: "abc"}, nil)
	evRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.EvidenceStatusUploaded).Return(nil)

	result, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		CaseID:     caseID,
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.EvidenceStatusUploaded, result.Status)
	assert.Equal(t, domain.EvidencePDF, result.FileType)
	assert.Equal(t, "screenshot.pdf", result.OriginalName)
	evRepo.AssertExpectations(t)
}

func TestEvidenceService_Upload_Success_PNG(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	caseID := uuid.New()
	file, header := createMultipartFile("listing.png", pngContent(), "image/png")
	defer file.Close()

	caseRepo.On("GetByID", mock.Anything, caseID).Return(&domain.Case{ID: caseID}, nil)
	evRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	evRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.EvidenceStatusUploaded).Return(nil)

	result, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		CaseID:     caseID,
		UploadedBy: uuid.New(),
		File:       file,
		Header:     header,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.EvidencePNG, result.FileType)
}

func TestEvidenceService_Upload_UnsupportedExtension(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	caseID := uuid.New()
	file, header := createMultipartFile("malware.exe", []byte("MZ executable"), "application/octet-stream")
	defer file.Close()

	caseRepo.On("GetByID", mock.Anything, caseID).Return(&domain.Case{ID: caseID}, nil)

	result, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		CaseID:     caseID,
		UploadedBy: uuid.New(),
		File:       file,
		Header:     header,
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	assert.Nil(t, result)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestEvidenceService_Upload_ContentMismatch(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	caseID := uuid.New()
	// A .pdf name wrapping plain text must fail magic-byte detection.
	file, header := createMultipartFile("fake.pdf", []byte("just some plain text, no pdf header"), "application/pdf")
	defer file.Close()

	caseRepo.On("GetByID", mock.Anything, caseID).Return(&domain.Case{ID: caseID}, nil)

	result, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		CaseID:     caseID,
		UploadedBy: uuid.New(),
		File:       file,
		Header:     header,
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	assert.Nil(t, result)
}

func TestEvidenceService_Upload_UnknownCase(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	caseID := uuid.New()
	file, header := createMultipartFile("screenshot.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	caseRepo.On("GetByID", mock.Anything, caseID).Return(nil, domain.ErrNotFound)

	result, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		CaseID:     caseID,
		UploadedBy: uuid.New(),
		File:       file,
		Header:     header,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, result)
}

func TestEvidenceService_Upload_StorageFailureMarksDeleted(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	caseID := uuid.New()
	file, header := createMultipartFile("screenshot.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	caseRepo.On("GetByID", mock.Anything, caseID).Return(&domain.Case{ID: caseID}, nil)
	evRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down"))
	evRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.EvidenceStatusDeleted).Return(nil)

	result, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		CaseID:     caseID,
		UploadedBy: uuid.New(),
		File:       file,
		Header:     header,
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Nil(t, result)
	evRepo.AssertExpectations(t)
}

func TestEvidenceService_GetDownloadURL(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	fileID := uuid.New()
	ev := &domain.EvidenceFile{ID: fileID, S3Bucket: "test-bucket", S3Key: "cases/x/evidence/y/z.pdf"}
	evRepo.On("GetByID", mock.Anything, fileID).Return(ev, nil)
	storage.On("GetPresignedURL", mock.Anything, "test-bucket", ev.S3Key, int64(3600)).
		Return("https://signed.example.com/z.pdf", nil)

	url, err := svc.GetDownloadURL(context.Background(), fileID)
	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/z.pdf", url)
}

func TestEvidenceService_Delete_RemovesObjectThenMarks(t *testing.T) {
	evRepo := new(mocks.MockEvidenceRepo)
	caseRepo := new(mocks.MockCaseRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(evRepo, caseRepo, storage, &cfg)

	fileID := uuid.New()
	ev := &domain.EvidenceFile{ID: fileID, S3Bucket: "test-bucket", S3Key: "cases/x/evidence/y/z.pdf"}
	evRepo.On("GetByID", mock.Anything, fileID).Return(ev, nil)
	storage.On("Delete", mock.Anything, "test-bucket", ev.S3Key).Return(nil)
	evRepo.On("UpdateStatus", mock.Anything, fileID, domain.EvidenceStatusDeleted).Return(nil)

	err := svc.Delete(context.Background(), fileID)
	assert.NoError(t, err)
	evRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}
