package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markguard/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 12)
	assert.Equal(t, "Code", row[0])
	assert.Equal(t, "Debtor Name", row[1])
	assert.Equal(t, "Created At", row[11])
}

func TestWriteCases(t *testing.T) {
	assignee := uuid.New()
	brandID := uuid.New()
	resolvedAt := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	createdAt := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	cases := []domain.Case{
		{
			ID:             uuid.New(),
			Code:           "MG-2026-AB12CD34",
			DebtorName:     "Loja Paralela ME",
			DebtorState:    "SP",
			AssignedTo:     assignee,
			BrandID:        &brandID,
			Status:         domain.CaseStatusResolved,
			Priority:       domain.PriorityHigh,
			SourceURL:      "https://marketplace.example/listing/123",
			TotalAmount:    15000,
			CurrentPayment: 7500.50,
			ResolvedAt:     &resolvedAt,
			CreatedAt:      createdAt,
		},
		{
			ID:          uuid.New(),
			Code:        "MG-2026-EF56AB78",
			DebtorName:  "Outlet Genérico",
			DebtorState: "MG",
			AssignedTo:  assignee,
			Status:      domain.CaseStatusNew,
			Priority:    domain.PriorityLow,
			CreatedAt:   createdAt,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteCases(cases))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[1]
	assert.Equal(t, "MG-2026-AB12CD34", first[0])
	assert.Equal(t, "Loja Paralela ME", first[1])
	assert.Equal(t, "SP", first[2])
	assert.Equal(t, "resolved", first[3])
	assert.Equal(t, "high", first[4])
	assert.Equal(t, assignee.String(), first[5])
	assert.Equal(t, brandID.String(), first[6])
	assert.Equal(t, "15000.00", first[8])
	assert.Equal(t, "7500.50", first[9])
	assert.Equal(t, resolvedAt.Format(time.RFC3339), first[10])

	second := records[2]
	assert.Equal(t, "MG-2026-EF56AB78", second[0])
	assert.Empty(t, second[6])  // no brand
	assert.Empty(t, second[10]) // not resolved
	assert.Equal(t, "0.00", second[8])
}
