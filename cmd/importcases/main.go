// Command importcases converts a case backlog spreadsheet into a SQL seed
// file. Expects one sheet with the columns: code, debtor name, debtor
// state, assignee email, brand name, status, priority, total amount,
// source URL. Data starts on the second row.
// Usage: go run ./cmd/importcases backlog.xlsx
// Output: db/seeds/cases.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"markguard/internal/domain"
)

const batchSize = 500

type caseEntry struct {
	code          string
	debtorName    string
	debtorState   string
	assigneeEmail string
	brandName     string // empty = NULL
	status        string
	priority      string
	totalAmount   float64
	sourceURL     string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: importcases <backlog.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/cases.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseBacklogSheet(f)
	if err != nil {
		return fmt.Errorf("parse backlog sheet: %w", err)
	}
	log.Printf("backlog sheet: %d entries", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Case backlog seed data generated from Excel.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseBacklogSheet reads the first sheet. Rows with an unknown status or
// priority are skipped with a warning rather than aborting the import.
func parseBacklogSheet(f *excelize.File) ([]caseEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []caseEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 9 {
			continue
		}

		e := caseEntry{
			code:          strings.TrimSpace(row[0]),
			debtorName:    strings.TrimSpace(row[1]),
			debtorState:   strings.ToUpper(strings.TrimSpace(row[2])),
			assigneeEmail: strings.TrimSpace(row[3]),
			brandName:     strings.TrimSpace(row[4]),
			status:        strings.TrimSpace(row[5]),
			priority:      strings.TrimSpace(row[6]),
			sourceURL:     strings.TrimSpace(row[8]),
		}
		if e.code == "" || e.debtorName == "" || e.assigneeEmail == "" {
			continue
		}
		if seen[e.code] {
			log.Printf("row %d: duplicate code %s, skipping", i+1, e.code)
			continue
		}
		if e.status == "" {
			e.status = string(domain.CaseStatusNew)
		}
		if !domain.ValidCaseStatuses[domain.CaseStatus(e.status)] {
			log.Printf("row %d: unknown status %q, skipping", i+1, e.status)
			continue
		}
		if e.priority == "" {
			e.priority = string(domain.PriorityMedium)
		}
		if !domain.ValidCasePriorities[domain.CasePriority(e.priority)] {
			log.Printf("row %d: unknown priority %q, skipping", i+1, e.priority)
			continue
		}

		amount, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(row[7]), ",", ""), 64)
		if err != nil {
			log.Printf("row %d: invalid amount %q, using 0", i+1, row[7])
			amount = 0
		}
		e.totalAmount = amount

		seen[e.code] = true
		entries = append(entries, e)
	}
	return entries, nil
}

func writeBatch(out *os.File, entries []caseEntry) error {
	if _, err := fmt.Fprintln(out, "INSERT INTO cases (code, debtor_name, debtor_state, assigned_to, brand_id, status, priority, source_url, total_amount) VALUES"); err != nil {
		return err
	}
	for i, e := range entries {
		brand := "NULL"
		if e.brandName != "" {
			brand = fmt.Sprintf("(SELECT id FROM brands WHERE name = %s)", quote(e.brandName))
		}
		sep := ","
		if i == len(entries)-1 {
			sep = ";"
		}
		line := fmt.Sprintf("  (%s, %s, %s, (SELECT id FROM users WHERE email = %s), %s, %s, %s, %s, %.2f)%s",
			quote(e.code), quote(e.debtorName), quote(e.debtorState),
			quote(e.assigneeEmail), brand, quote(e.status), quote(e.priority),
			quote(e.sourceURL), e.totalAmount, sep)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
