package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test workbook: %v", err)
	}
	return path
}

func TestReadTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Gender")
	f.SetCellValue(sheet, "B1", "Hobby - Reading")
	f.SetCellValue(sheet, "A2", "M")
	f.SetCellValue(sheet, "B2", 1)
	f.SetCellValue(sheet, "A3", "F")
	// B3 left missing: the record must still be padded to 2 cells.

	path := saveWorkbook(t, f)
	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open test workbook: %v", err)
	}
	defer f2.Close()

	table, err := ReadTable(f2, sheet)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if len(table.Headers) != 2 || table.Headers[0] != "Gender" {
		t.Errorf("headers = %v, expected [Gender, Hobby - Reading]", table.Headers)
	}
	if table.RowCount() != 2 {
		t.Fatalf("expected 2 records, got %d", table.RowCount())
	}
	if table.Records[0][1] != "1" {
		t.Errorf("numeric cell read as %q, expected \"1\"", table.Records[0][1])
	}
	if table.Records[1][1] != "" {
		t.Errorf("missing cell = %q, expected empty", table.Records[1][1])
	}
}

func TestReadTableEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := saveWorkbook(t, f)
	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open test workbook: %v", err)
	}
	defer f2.Close()

	table, err := ReadTable(f2, f2.GetSheetName(0))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.RowCount() != 0 || table.ColumnCount() != 0 {
		t.Errorf("expected empty table, got %d rows, %d columns", table.RowCount(), table.ColumnCount())
	}
}

func TestPickSheetSkipsEmptySheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), "Empty")
	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	f.SetCellValue("Data", "A1", "Gender")
	f.SetCellValue("Data", "A2", "M")

	path := saveWorkbook(t, f)
	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open test workbook: %v", err)
	}
	defer f2.Close()

	name, err := PickSheet(f2)
	if err != nil {
		t.Fatalf("PickSheet failed: %v", err)
	}
	if name != "Data" {
		t.Errorf("picked sheet %q, expected Data", name)
	}
}

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct {
		raw      []string
		expected []string
	}{
		{[]string{"A", "B"}, []string{"A", "B"}},
		{[]string{" A ", ""}, []string{"A", "Column 2"}},
		{[]string{"Q", "Q", "Q"}, []string{"Q", "Q (2)", "Q (3)"}},
		{nil, []string{}},
	}

	for _, tt := range tests {
		got := normalizeHeaders(tt.raw)
		if len(got) != len(tt.expected) {
			t.Errorf("normalizeHeaders(%v) = %v, expected %v", tt.raw, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("normalizeHeaders(%v)[%d] = %q, expected %q", tt.raw, i, got[i], tt.expected[i])
			}
		}
	}
}
