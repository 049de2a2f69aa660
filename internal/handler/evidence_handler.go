package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/middleware"
	"markguard/internal/service"
)

// EvidenceHandler handles case evidence endpoints.
type EvidenceHandler struct {
	evidenceService service.EvidenceService
}

// NewEvidenceHandler creates a new EvidenceHandler.
func NewEvidenceHandler(evidenceService service.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{evidenceService: evidenceService}
}

// Upload handles POST /api/v1/cases/:id/evidence
// @Summary Attach an evidence file to a case
// @Description Upload an evidence file (PDF, JPG, PNG) to S3 and record its metadata
// @Tags evidence
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Case ID"
// @Param file formData file true "Evidence file (PDF, JPG, or PNG)"
// @Success 201 {object} Response{data=domain.EvidenceFile} "Evidence uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 404 {object} ErrorResponseBody "Case not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /cases/{id}/evidence [post]
func (h *EvidenceHandler) Upload(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	ev, err := h.evidenceService.Upload(c.Request.Context(), service.EvidenceUploadInput{
		CaseID:     caseID,
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, ev)
}

// ListByCase handles GET /api/v1/cases/:id/evidence
// @Summary List evidence files on a case
// @Tags evidence
// @Produce json
// @Param id path string true "Case ID"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.EvidenceFile,meta=PagMeta} "List of evidence files"
// @Security BearerAuth
// @Router /cases/{id}/evidence [get]
func (h *EvidenceHandler) ListByCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}
	offset, limit := parsePagination(c)

	files, total, err := h.evidenceService.ListByCase(c.Request.Context(), caseID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, files, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetDownloadURL handles GET /api/v1/evidence/:id/download
// @Summary Get a presigned download URL for an evidence file
// @Tags evidence
// @Produce json
// @Param id path string true "Evidence file ID"
// @Success 200 {object} Response{data=DownloadURLResponse} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /evidence/{id}/download [get]
func (h *EvidenceHandler) GetDownloadURL(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid evidence file ID")
		return
	}

	url, err := h.evidenceService.GetDownloadURL(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/evidence/:id
// @Summary Delete an evidence file
// @Description Remove the object from storage and mark the metadata as deleted
// @Tags evidence
// @Produce json
// @Param id path string true "Evidence file ID"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /evidence/{id} [delete]
func (h *EvidenceHandler) Delete(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid evidence file ID")
		return
	}

	if err := h.evidenceService.Delete(c.Request.Context(), fileID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
