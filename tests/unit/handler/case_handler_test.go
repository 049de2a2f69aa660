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
	"markguard/internal/port"
	"markguard/internal/service"
	"markguard/mocks"
)

func newCaseHandler() (*handler.CaseHandler, *mocks.MockCaseService) {
	mockSvc := new(mocks.MockCaseService)
	h := handler.NewCaseHandler(mockSvc)
	return h, mockSvc
}

func TestCaseHandler_Create_Success(t *testing.T) {
	h, mockSvc := newCaseHandler()

	assignedTo := uuid.New()
	created := &domain.Case{ID: uuid.New(), Code: "MG-2026-ABCD1234", Status: domain.CaseStatusNew}

	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateCaseInput) bool {
		return in.DebtorName == "Loja Falsa LTDA" && in.AssignedTo == assignedTo
	})).Return(created, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"debtor_name":  "Loja Falsa LTDA",
		"debtor_state": "SP",
		"assigned_to":  assignedTo.String(),
		"total_amount": 1500,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/cases", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, uuid.New(), false, false, "prospeccao", "")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCaseHandler_Create_MissingRequiredFields(t *testing.T) {
	h, mockSvc := newCaseHandler()

	body, _ := json.Marshal(map[string]interface{}{"debtor_name": "Loja Falsa LTDA"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/cases", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaseHandler_List_PaginatedWithFilter(t *testing.T) {
	h, mockSvc := newCaseHandler()

	assignedTo := uuid.New()
	cases := []domain.Case{{ID: uuid.New()}, {ID: uuid.New()}}

	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f port.CaseListFilter) bool {
		return f.AssignedTo != nil && *f.AssignedTo == assignedTo &&
			f.Status != nil && *f.Status == domain.CaseStatusInNegotiation
	}), 0, 20).Return(cases, 2, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/cases?assigned_to="+assignedTo.String()+"&status=in_negotiation", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestCaseHandler_List_UnknownStatusRejected(t *testing.T) {
	h, mockSvc := newCaseHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/cases?status=escalated", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCaseHandler_ChangeStatus_Success(t *testing.T) {
	h, mockSvc := newCaseHandler()

	caseID := uuid.New()
	updated := &domain.Case{ID: caseID, Status: domain.CaseStatusResolved}
	mockSvc.On("ChangeStatus", mock.Anything, caseID, domain.CaseStatusResolved).Return(updated, nil)

	body, _ := json.Marshal(map[string]string{"status": "resolved"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/api/v1/cases/"+caseID.String()+"/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: caseID.String()}}

	h.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCaseHandler_ChangeStatus_InvalidStatusFromService(t *testing.T) {
	h, mockSvc := newCaseHandler()

	caseID := uuid.New()
	mockSvc.On("ChangeStatus", mock.Anything, caseID, domain.CaseStatus("escalated")).
		Return(nil, domain.ErrInvalidCaseStatus)

	body, _ := json.Marshal(map[string]string{"status": "escalated"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/api/v1/cases/"+caseID.String()+"/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: caseID.String()}}

	h.ChangeStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "INVALID_CASE_STATUS", resp.Error.Code)
}

func TestCaseHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newCaseHandler()

	caseID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, caseID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/cases/"+caseID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: caseID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCaseHandler_GetByID_MalformedID(t *testing.T) {
	h, mockSvc := newCaseHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/cases/not-a-uuid", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
