package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"markguard/internal/domain"
	"markguard/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrDuplicateCaseCode):
		return http.StatusConflict, "DUPLICATE_CASE_CODE", "case code already exists"
	case errors.Is(err, domain.ErrDuplicateBrandName):
		return http.StatusConflict, "DUPLICATE_BRAND_NAME", "brand name already exists"
	case errors.Is(err, domain.ErrInvalidCaseStatus):
		return http.StatusBadRequest, "INVALID_CASE_STATUS", "invalid case status"
	case errors.Is(err, domain.ErrInvalidPriority):
		return http.StatusBadRequest, "INVALID_PRIORITY", "invalid case priority; allowed: low, medium, high, urgent"
	case errors.Is(err, domain.ErrInvalidPaymentStatus):
		return http.StatusBadRequest, "INVALID_PAYMENT_STATUS", "invalid payment status"
	case errors.Is(err, domain.ErrInvalidDepartment):
		return http.StatusBadRequest, "INVALID_DEPARTMENT", "invalid department"
	case errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusBadRequest, "INVALID_PROFILE", "invalid client profile"
	case errors.Is(err, domain.ErrInvalidDashboard):
		return http.StatusBadRequest, "INVALID_DASHBOARD_TYPE", "unknown dashboard type"
	case errors.Is(err, domain.ErrInvalidInteraction):
		return http.StatusBadRequest, "INVALID_INTERACTION_KIND", "invalid interaction kind"
	case errors.Is(err, domain.ErrInvalidTemplateKind):
		return http.StatusBadRequest, "INVALID_TEMPLATE_KIND", "invalid template kind; allowed: notification, agreement, email"
	case errors.Is(err, domain.ErrBrandInUse):
		return http.StatusConflict, "BRAND_IN_USE", "brand is referenced by cases and cannot be removed"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractCaller rebuilds the caller identity from the request context.
// Returns false if auth context is missing (error response already written).
func extractCaller(c *gin.Context) (domain.Caller, bool) {
	caller, err := middleware.GetCaller(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return domain.Caller{}, false
	}
	return caller, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
