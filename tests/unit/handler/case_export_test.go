package handler_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"markguard/internal/csvexport"
	"markguard/internal/domain"
	"markguard/internal/port"
)

func TestCaseHandler_ExportCSV_Success(t *testing.T) {
	h, mockSvc := newCaseHandler()

	cases := []domain.Case{
		{ID: uuid.New(), Code: "MG-2026-AAAA0001", DebtorName: "Loja Falsa LTDA", DebtorState: "SP",
			Status: domain.CaseStatusResolved, Priority: domain.PriorityHigh, TotalAmount: 1500},
		{ID: uuid.New(), Code: "MG-2026-BBBB0002", DebtorName: "Outra Loja ME", DebtorState: "RJ",
			Status: domain.CaseStatusNew, Priority: domain.PriorityMedium},
	}
	mockSvc.On("List", mock.Anything, mock.Anything, 0, 200).Return(cases, 2, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/cases/export/csv", http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	assert.True(t, bytes.HasPrefix(body, csvexport.BOM), "body must start with UTF-8 BOM")

	reader := csv.NewReader(strings.NewReader(string(bytes.TrimPrefix(body, csvexport.BOM))))
	records, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "Code", records[0][0])
	assert.Equal(t, "MG-2026-AAAA0001", records[1][0])
	assert.Equal(t, "Loja Falsa LTDA", records[1][1])
	assert.Equal(t, "resolved", records[1][3])
	mockSvc.AssertExpectations(t)
}

func TestCaseHandler_ExportCSV_BatchesUntilExhausted(t *testing.T) {
	h, mockSvc := newCaseHandler()

	firstBatch := make([]domain.Case, 200)
	for i := range firstBatch {
		firstBatch[i] = domain.Case{ID: uuid.New(), Code: "MG-2026-BATCH", Status: domain.CaseStatusNew}
	}
	secondBatch := []domain.Case{{ID: uuid.New(), Code: "MG-2026-LAST", Status: domain.CaseStatusNew}}

	mockSvc.On("List", mock.Anything, mock.Anything, 0, 200).Return(firstBatch, 201, nil).Once()
	mockSvc.On("List", mock.Anything, mock.Anything, 200, 200).Return(secondBatch, 201, nil).Once()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/cases/export/csv", http.NoBody)

	h.ExportCSV(c)

	body := bytes.TrimPrefix(w.Body.Bytes(), csvexport.BOM)
	reader := csv.NewReader(bytes.NewReader(body))
	records, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 202)
	mockSvc.AssertExpectations(t)
}

func TestCaseHandler_ExportCSV_AppliesFilter(t *testing.T) {
	h, mockSvc := newCaseHandler()

	assignedTo := uuid.New()
	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f port.CaseListFilter) bool {
		return f.AssignedTo != nil && *f.AssignedTo == assignedTo
	}), 0, 200).Return([]domain.Case{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/cases/export/csv?assigned_to="+assignedTo.String(), http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCaseHandler_ExportCSV_InvalidFilter(t *testing.T) {
	h, mockSvc := newCaseHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/cases/export/csv?assigned_to=not-a-uuid", http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
