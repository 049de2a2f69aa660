package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"markguard/internal/domain"
	"markguard/internal/middleware"
	"markguard/internal/service"
	"markguard/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthedRouter(authSvc service.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/protected", func(c *gin.Context) {
		caller, err := middleware.GetCaller(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":    caller.ID.String(),
			"is_admin":   caller.IsAdmin,
			"is_client":  caller.IsClient,
			"department": string(caller.MainDepartment),
		})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	r := newAuthedRouter(mockAuth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	r := newAuthedRouter(mockAuth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)
	r := newAuthedRouter(mockAuth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthMiddleware_ValidTokenInjectsCaller(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	userID := uuid.New()
	dept := domain.DeptAuditoria
	mockAuth.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID:     userID,
		Email:      "auditor@markguard.com",
		Department: &dept,
	}, nil)
	r := newAuthedRouter(mockAuth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "auditoria")
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "staff-token").Return(&service.Claims{UserID: uuid.New()}, nil)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(mockAuth), middleware.RequireAdmin())
	r.GET("/admin-only", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin-only", http.NoBody)
	req.Header.Set("Authorization", "Bearer staff-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "admin-token").Return(&service.Claims{UserID: uuid.New(), IsAdmin: true}, nil)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(mockAuth), middleware.RequireAdmin())
	r.GET("/admin-only", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin-only", http.NoBody)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireInternal_RejectsClient(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	profile := domain.ProfileGestor
	mockAuth.On("ValidateToken", "client-token").Return(&service.Claims{
		UserID:        uuid.New(),
		IsClient:      true,
		ClientProfile: &profile,
	}, nil)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(mockAuth), middleware.RequireInternal())
	r.GET("/internal-only", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/internal-only", http.NoBody)
	req.Header.Set("Authorization", "Bearer client-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireInternal_AdminClientPasses(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID:   uuid.New(),
		IsAdmin:  true,
		IsClient: true,
	}, nil)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(mockAuth), middleware.RequireInternal())
	r.GET("/internal-only", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/internal-only", http.NoBody)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
