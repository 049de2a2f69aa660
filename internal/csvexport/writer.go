package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"markguard/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Code",
	"Debtor Name",
	"Debtor State",
	"Status",
	"Priority",
	"Assigned To",
	"Brand ID",
	"Source URL",
	"Total Amount",
	"Current Payment",
	"Resolved At",
	"Created At",
}

// Writer wraps csv.Writer for exporting cases as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteCases converts a batch of cases to CSV rows and writes them.
func (w *Writer) WriteCases(cases []domain.Case) error {
	for i := range cases {
		row := caseToRow(&cases[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func caseToRow(c *domain.Case) []string {
	row := make([]string, len(columns))
	row[0] = c.Code
	row[1] = c.DebtorName
	row[2] = c.DebtorState
	row[3] = string(c.Status)
	row[4] = string(c.Priority)
	row[5] = c.AssignedTo.String()
	if c.BrandID != nil {
		row[6] = c.BrandID.String()
	}
	row[7] = c.SourceURL
	row[8] = formatMoney(c.TotalAmount)
	row[9] = formatMoney(c.CurrentPayment)
	row[10] = formatTime(c.ResolvedAt)
	row[11] = c.CreatedAt.Format(time.RFC3339)
	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
