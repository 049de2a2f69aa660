package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/service"
)

// BrandHandler handles brand management endpoints.
type BrandHandler struct {
	brandService service.BrandService
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// Create handles POST /api/v1/brands
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param request body CreateBrandRequest true "Brand details"
// @Success 201 {object} Response{data=domain.Brand} "Brand created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Brand name already exists"
// @Security BearerAuth
// @Router /brands [post]
func (h *BrandHandler) Create(c *gin.Context) {
	var input service.CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	brand, err := h.brandService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, brand)
}

// List handles GET /api/v1/brands
// @Summary List brands
// @Tags brands
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Brand,meta=PagMeta} "List of brands"
// @Security BearerAuth
// @Router /brands [get]
func (h *BrandHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	brands, total, err := h.brandService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, brands, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/brands/:id
// @Summary Get a brand
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} Response{data=domain.Brand} "Brand"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /brands/{id} [get]
func (h *BrandHandler) GetByID(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid brand ID")
		return
	}

	brand, err := h.brandService.GetByID(c.Request.Context(), brandID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, brand)
}

// Update handles PUT /api/v1/brands/:id
// @Summary Update a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Param request body UpdateBrandRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Brand} "Updated brand"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /brands/{id} [put]
func (h *BrandHandler) Update(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid brand ID")
		return
	}

	var input service.UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	brand, err := h.brandService.Update(c.Request.Context(), brandID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, brand)
}

// Delete handles DELETE /api/v1/brands/:id
// @Summary Delete a brand
// @Description Remove a brand that has no cases attached
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Failure 409 {object} ErrorResponseBody "Brand is referenced by cases"
// @Security BearerAuth
// @Router /brands/{id} [delete]
func (h *BrandHandler) Delete(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid brand ID")
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), brandID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
