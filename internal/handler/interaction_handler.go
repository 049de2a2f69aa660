package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/middleware"
	"markguard/internal/service"
)

// InteractionHandler handles case interaction log endpoints.
type InteractionHandler struct {
	interactionService service.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(interactionService service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// Create handles POST /api/v1/interactions
// @Summary Log an interaction on a case
// @Tags interactions
// @Accept json
// @Produce json
// @Param request body CreateInteractionRequest true "Interaction details"
// @Success 201 {object} Response{data=domain.Interaction} "Interaction logged"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Case not found"
// @Security BearerAuth
// @Router /interactions [post]
func (h *InteractionHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateInteractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	it, err := h.interactionService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, it)
}

// ListByCase handles GET /api/v1/cases/:id/interactions
// @Summary List interactions on a case
// @Tags interactions
// @Produce json
// @Param id path string true "Case ID"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Interaction,meta=PagMeta} "List of interactions"
// @Security BearerAuth
// @Router /cases/{id}/interactions [get]
func (h *InteractionHandler) ListByCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}
	offset, limit := parsePagination(c)

	interactions, total, err := h.interactionService.ListByCase(c.Request.Context(), caseID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, interactions, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Delete handles DELETE /api/v1/interactions/:id
// @Summary Delete an interaction
// @Tags interactions
// @Produce json
// @Param id path string true "Interaction ID"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /interactions/{id} [delete]
func (h *InteractionHandler) Delete(c *gin.Context) {
	interactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid interaction ID")
		return
	}

	if err := h.interactionService.Delete(c.Request.Context(), interactionID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
