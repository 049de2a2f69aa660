package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/middleware"
	"markguard/internal/service"
)

// MetricsHandler handles dashboard metrics endpoints.
type MetricsHandler struct {
	metricsService service.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(metricsService service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// GetDashboard handles GET /api/v1/metrics/dashboard
// @Summary Get the caller's dashboard metrics
// @Description Compute the metrics bundle for the dashboard inferred from the caller's role: admins get the system-wide view, internal staff their department view, clients their profile view.
// @Tags metrics
// @Produce json
// @Param date_from query string false "Window start (YYYY-MM-DD); ignored without date_to"
// @Param date_to query string false "Window end (YYYY-MM-DD); ignored without date_from"
// @Param brand_id query string false "Brand ID"
// @Param status query string false "Case status"
// @Success 200 {object} Response{data=domain.MetricsBundle} "Metrics bundle"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /metrics/dashboard [get]
func (h *MetricsHandler) GetDashboard(c *gin.Context) {
	caller, ok := extractCaller(c)
	if !ok {
		return
	}

	filter, err := parseMetricsFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	bundle, err := h.metricsService.ComputeMetrics(c.Request.Context(), caller, *filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bundle)
}

// GetDashboardByType handles GET /api/v1/metrics/dashboard/:type
// @Summary Get a named dashboard's metrics
// @Description Compute the metrics bundle for an explicitly named dashboard type, scoped to the caller where the routine scopes by user.
// @Tags metrics
// @Produce json
// @Param type path string true "Dashboard type (admin, atendimento, prospeccao, verificacao, auditoria, logistica, ip_tools, financeiro_interno, analista, gestor, analista_contrafacao, financeiro, comum)"
// @Param date_from query string false "Window start (YYYY-MM-DD); ignored without date_to"
// @Param date_to query string false "Window end (YYYY-MM-DD); ignored without date_from"
// @Param brand_id query string false "Brand ID"
// @Param status query string false "Case status"
// @Success 200 {object} Response{data=domain.MetricsBundle} "Metrics bundle"
// @Failure 400 {object} ErrorResponseBody "Unknown dashboard type or invalid filter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /metrics/dashboard/{type} [get]
func (h *MetricsHandler) GetDashboardByType(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	filter, err := parseMetricsFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	dashboard := domain.DashboardType(c.Param("type"))
	bundle, err := h.metricsService.ComputeDashboard(c.Request.Context(), dashboard, userID, *filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bundle)
}

// parseMetricsFilter extracts the shared dashboard filter from query params.
func parseMetricsFilter(c *gin.Context) (*domain.MetricsFilter, error) {
	filter := &domain.MetricsFilter{}

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

	return filter, nil
}
