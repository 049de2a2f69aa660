package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"markguard/internal/domain"
	"markguard/internal/handler"
	"markguard/internal/service"
	"markguard/mocks"
)

func newUserHandler() (*handler.UserHandler, *mocks.MockUserService) {
	mockSvc := new(mocks.MockUserService)
	h := handler.NewUserHandler(mockSvc)
	return h, mockSvc
}

func TestUserHandler_Create_Success(t *testing.T) {
	h, mockSvc := newUserHandler()

	created := &domain.User{ID: uuid.New(), Email: "new@markguard.com", FullName: "New Analyst"}
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateUserInput) bool {
		return in.Email == "new@markguard.com" && in.MainDepartment != nil &&
			*in.MainDepartment == domain.DeptProspeccao
	})).Return(created, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"email":           "new@markguard.com",
		"full_name":       "New Analyst",
		"main_department": "prospeccao",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	h, mockSvc := newUserHandler()

	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateEmail)

	body, _ := json.Marshal(map[string]interface{}{
		"email":     "taken@markguard.com",
		"full_name": "New Analyst",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "DUPLICATE_EMAIL", resp.Error.Code)
}

func TestUserHandler_List_CapsLimit(t *testing.T) {
	h, mockSvc := newUserHandler()

	// An out-of-range limit falls back to the default page size.
	mockSvc.On("List", mock.Anything, 0, 20).Return([]domain.User{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/users?limit=5000", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newUserHandler()

	userID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/users/"+userID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Update_InvalidDepartment(t *testing.T) {
	h, mockSvc := newUserHandler()

	userID := uuid.New()
	mockSvc.On("Update", mock.Anything, userID, mock.Anything).Return(nil, domain.ErrInvalidDepartment)

	body, _ := json.Marshal(map[string]interface{}{"main_department": "marketing"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/users/"+userID.String(), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
