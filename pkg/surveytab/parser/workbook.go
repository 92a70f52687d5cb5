// Package parser reads survey raw data out of Excel workbooks.
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// ReadTable reads one worksheet into a Table. The first row is the
// header row; data rows are padded to the header width so every record
// has one cell per column. Rows wider than the header are clipped.
// Trailing fully-empty rows are dropped.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	table := &models.Table{Sheet: sheetName}
	if len(rows) == 0 {
		return table, nil
	}

	table.Headers = normalizeHeaders(rows[0])

	for _, row := range rows[1:] {
		record := make([]string, len(table.Headers))
		for i := range record {
			if i < len(row) {
				record[i] = row[i]
			}
		}
		table.Records = append(table.Records, record)
	}

	// Drop trailing rows with no data at all.
	for len(table.Records) > 0 && emptyRecord(table.Records[len(table.Records)-1]) {
		table.Records = table.Records[:len(table.Records)-1]
	}

	slog.Debug("read survey table",
		slog.String("sheet", sheetName),
		slog.Int("rows", len(table.Records)),
		slog.Int("columns", len(table.Headers)))

	return table, nil
}

// PickSheet returns the first sheet holding a header row plus at least
// one data row. With no such sheet it falls back to the first sheet of
// the workbook.
func PickSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(rows) >= 2 {
			slog.Debug("picked sheet", slog.String("sheet", name), slog.Int("rows", len(rows)))
			return name, nil
		}
	}
	return sheets[0], nil
}

// normalizeHeaders trims header cells and makes them unique: empty
// headers become "Column N", duplicates get a " (N)" suffix.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int)

	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s (%d)", name, n)
			seen[name]++
		}
		headers[i] = name
	}
	return headers
}

func emptyRecord(record []string) bool {
	for _, cell := range record {
		if !models.IsMissing(cell) {
			return false
		}
	}
	return true
}
