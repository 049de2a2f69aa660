package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles POST /api/v1/payments
// @Summary Register a payment installment on a case
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Payment details"
// @Success 201 {object} Response{data=domain.Payment} "Payment created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Case not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var input service.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.paymentService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, p)
}

// ListByCase handles GET /api/v1/cases/:id/payments
// @Summary List payments on a case
// @Tags payments
// @Produce json
// @Param id path string true "Case ID"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Payment,meta=PagMeta} "List of payments"
// @Security BearerAuth
// @Router /cases/{id}/payments [get]
func (h *PaymentHandler) ListByCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid case ID")
		return
	}
	offset, limit := parsePagination(c)

	payments, total, err := h.paymentService.ListByCase(c.Request.Context(), caseID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, payments, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/payments/:id
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} Response{data=domain.Payment} "Payment"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment ID")
		return
	}

	p, err := h.paymentService.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, p)
}

// UpdateStatus handles PATCH /api/v1/payments/:id/status
// @Summary Move a payment through its lifecycle
// @Description A transition to paid also adds the amount to the case's running total
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body UpdatePaymentStatusRequest true "Target status"
// @Success 200 {object} Response{data=domain.Payment} "Updated payment"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /payments/{id}/status [patch]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment ID")
		return
	}

	var req service.UpdatePaymentStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.paymentService.UpdateStatus(c.Request.Context(), paymentID, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, p)
}

// Delete handles DELETE /api/v1/payments/:id
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment ID")
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), paymentID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
