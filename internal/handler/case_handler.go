package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/csvexport"
	"markguard/internal/domain"
	"markguard/internal/port"
	"markguard/internal/service"
)

// exportBatchLimit caps the number of cases pulled into a CSV export.
const exportBatchLimit = 200

// CaseHandler handles case management endpoints.
type CaseHandler struct {
	caseService service.CaseService
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(caseService service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// ChangeStatusRequest is the body for status transitions.
type ChangeStatusRequest struct {
	Status domain.CaseStatus `json:"status" binding:"required"`
}

// Create handles POST /api/v1/cases
// @Summary Open a case
// @Tags cases
// @Accept json
// @Produce json
// @Param request body CreateCaseRequest true "Case details"
// @Success 201 {object} Response{data=domain.Case} "Case created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Case code already exists"
// @Security BearerAuth
// @Router /cases [post]
func (h *CaseHandler) Create(c *gin.Context) {
	var input service.CreateCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	created, err := h.caseService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, created)
}

// List handles GET /api/v1/cases
// @Summary List cases
// @Description List cases filtered by assignee, brand, status, priority, or creation date range
// @Tags cases
// @Produce json
// @Param assigned_to query string false "Assignee user ID"
// @Param brand_id query string false "Brand ID"
// @Param status query string false "Case status"
// @Param priority query string false "Case priority"
// @Param date_from query string false "Created from (YYYY-MM-DD)"
// @Param date_to query string false "Created to (YYYY-MM-DD)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Case,meta=PagMeta} "List of cases"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Security BearerAuth
// @Router /cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	filter, err := parseCaseListFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}
	offset, limit := parsePagination(c)

	cases, total, err := h.caseService.List(c.Request.Context(), *filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, cases, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/cases/:id
// @Summary Get a case
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} Response{data=domain.Case} "Case"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /cases/{id} [get]
func (h *CaseHandler) GetByID(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}

	found, err := h.caseService.GetByID(c.Request.Context(), caseID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, found)
}

// Update handles PUT /api/v1/cases/:id
// @Summary Update case details
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param request body UpdateCaseRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Case} "Updated case"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /cases/{id} [put]
func (h *CaseHandler) Update(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}

	var input service.UpdateCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.caseService.Update(c.Request.Context(), caseID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, updated)
}

// ChangeStatus handles PATCH /api/v1/cases/:id/status
// @Summary Transition a case to a new status
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param request body ChangeStatusRequest true "Target status"
// @Success 200 {object} Response{data=domain.Case} "Updated case"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /cases/{id}/status [patch]
func (h *CaseHandler) ChangeStatus(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.caseService.ChangeStatus(c.Request.Context(), caseID, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, updated)
}

// Delete handles DELETE /api/v1/cases/:id
// @Summary Delete a case
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /cases/{id} [delete]
func (h *CaseHandler) Delete(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}

	if err := h.caseService.Delete(c.Request.Context(), caseID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// ExportCSV handles GET /api/v1/cases/export/csv
// @Summary Export cases as CSV
// @Description Stream the filtered case list as a UTF-8 CSV file
// @Tags cases
// @Produce text/csv
// @Param assigned_to query string false "Assignee user ID"
// @Param brand_id query string false "Brand ID"
// @Param status query string false "Case status"
// @Param priority query string false "Case priority"
// @Param date_from query string false "Created from (YYYY-MM-DD)"
// @Param date_to query string false "Created to (YYYY-MM-DD)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Security BearerAuth
// @Router /cases/export/csv [get]
func (h *CaseHandler) ExportCSV(c *gin.Context) {
	filter, err := parseCaseListFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	filename := fmt.Sprintf("cases_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}

	offset := 0
	for {
		cases, total, err := h.caseService.List(c.Request.Context(), *filter, offset, exportBatchLimit)
		if err != nil {
			// Headers are already out; all we can do is stop the stream.
			return
		}
		if err := w.WriteCases(cases); err != nil {
			return
		}
		offset += len(cases)
		if offset >= total || len(cases) == 0 {
			break
		}
	}
	w.Flush()
}

// parseCaseListFilter extracts case list filter parameters from query params.
func parseCaseListFilter(c *gin.Context) (*port.CaseListFilter, error) {
	filter := &port.CaseListFilter{}

	if v := c.Query("assigned_to"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid 'assigned_to': must be a valid UUID")
		}
		filter.AssignedTo = &id
	}
	if v := c.Query("brand_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid 'brand_id': must be a valid UUID")
		}
		filter.BrandID = &id
	}
	if v := c.Query("status"); v != "" {
		st := domain.CaseStatus(v)
		if !domain.ValidCaseStatuses[st] {
			return nil, fmt.Errorf("invalid 'status': unknown case status")
		}
		filter.Status = &st
	}
	if v := c.Query("priority"); v != "" {
		p := domain.CasePriority(v)
		if !domain.ValidCasePriorities[p] {
			return nil, fmt.Errorf("invalid 'priority': must be one of low, medium, high, urgent")
		}
		filter.Priority = &p
	}
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("invalid 'date_from': must be YYYY-MM-DD")
		}
		filter.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("invalid 'date_to': must be YYYY-MM-DD")
		}
		filter.DateTo = &t
	}

	return filter, nil
}
