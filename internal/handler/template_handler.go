package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/middleware"
	"markguard/internal/service"
)

// TemplateHandler handles notification template endpoints.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// Create handles POST /api/v1/templates
// @Summary Create a notification template
// @Tags templates
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Template details"
// @Success 201 {object} Response{data=domain.NotificationTemplate} "Template created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.templateService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, t)
}

// List handles GET /api/v1/templates
// @Summary List notification templates
// @Tags templates
// @Produce json
// @Param kind query string false "Template kind filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.NotificationTemplate,meta=PagMeta} "List of templates"
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var kind *domain.TemplateKind
	if v := c.Query("kind"); v != "" {
		k := domain.TemplateKind(v)
		kind = &k
	}

	templates, total, err := h.templateService.List(c.Request.Context(), kind, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, templates, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/templates/:id
// @Summary Get a notification template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} Response{data=domain.NotificationTemplate} "Template"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetByID(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid template ID")
		return
	}

	t, err := h.templateService.GetByID(c.Request.Context(), templateID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, t)
}

// Update handles PUT /api/v1/templates/:id
// @Summary Update a notification template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.NotificationTemplate} "Updated template"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid template ID")
		return
	}

	var input service.UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.templateService.Update(c.Request.Context(), templateID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, t)
}

// Delete handles DELETE /api/v1/templates/:id
// @Summary Delete a notification template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid template ID")
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), templateID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
