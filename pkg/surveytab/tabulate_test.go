package surveytab

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

func writeSurveyWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Gender", "Region", "Hobby - Reading", "Hobby - Sports"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	records := [][]interface{}{
		{"M", "East", 1, 0},
		{"F", "West", 0, 1},
		{"F", "East", 1, 1},
		{nil, "East", 0, 0},
	}
	for r, record := range records {
		for c, v := range record {
			if v == nil {
				continue
			}
			col, _ := excelize.ColumnNumberToName(c + 1)
			cell := col + string(rune('2'+r))
			f.SetCellValue(sheet, cell, v)
		}
	}

	path := filepath.Join(t.TempDir(), "survey.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save survey workbook: %v", err)
	}
	return path
}

func TestLoadClassifiesColumns(t *testing.T) {
	s, err := Load(writeSurveyWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Table.RowCount() != 4 {
		t.Errorf("row count = %d, expected 4", s.Table.RowCount())
	}
	if len(s.Classes.Groups) != 1 || s.Classes.Groups[0].Question != "Hobby" {
		t.Fatalf("classification groups = %+v, expected one Hobby group", s.Classes.Groups)
	}
	if len(s.Classes.SAColumns) != 2 {
		t.Errorf("SA columns = %v, expected [Gender Region]", s.Classes.SAColumns)
	}
}

func TestSurveySAFrequency(t *testing.T) {
	s, err := Load(writeSurveyWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ft, dt, err := s.SAFrequency("Gender", DefaultOptions())
	if err != nil {
		t.Fatalf("SAFrequency failed: %v", err)
	}
	if ft.Rows[0].Label != "F" || ft.Rows[0].Count != 2 {
		t.Errorf("top row = %+v, expected F with count 2", ft.Rows[0])
	}
	hasNoAnswer := false
	for _, row := range ft.Rows {
		if row.Label == models.NoAnswer {
			hasNoAnswer = true
		}
	}
	if !hasNoAnswer {
		t.Error("missing cell did not surface as the no-answer bucket")
	}
	if len(dt.Rows) != len(ft.Rows) {
		t.Errorf("display rows = %d, expected %d", len(dt.Rows), len(ft.Rows))
	}
}

func TestSurveyMAFrequency(t *testing.T) {
	s, err := Load(writeSurveyWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ft, _, err := s.MAFrequency("Hobby", DefaultOptions())
	if err != nil {
		t.Fatalf("MAFrequency failed: %v", err)
	}
	if ft.Base != 4 {
		t.Errorf("base = %d, expected respondent count 4", ft.Base)
	}
	if _, _, err := s.MAFrequency("Nope", DefaultOptions()); !errors.Is(err, models.ErrGroupNotFound) {
		t.Errorf("unknown group: expected ErrGroupNotFound, got %v", err)
	}
}

func TestSurveyMAFrequencyNoGroups(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Gender")
	f.SetCellValue(sheet, "A2", "M")
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}

	s, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, _, err := s.MAFrequency("Hobby", DefaultOptions()); !errors.Is(err, ErrNoMAGroups) {
		t.Errorf("expected ErrNoMAGroups, got %v", err)
	}
}

func TestSurveyCrossTabulate(t *testing.T) {
	s, err := Load(writeSurveyWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	opts := DefaultOptions()
	opts.Metric = models.MetricRowPercent
	ct, view, err := s.CrossTabulate("Gender", "Region", opts)
	if err != nil {
		t.Fatalf("CrossTabulate failed: %v", err)
	}
	if ct.Metric != models.MetricRowPercent {
		t.Errorf("metric = %q, expected row%%", ct.Metric)
	}
	if len(view.RowLabels) != len(ct.RowLabels) {
		t.Errorf("display labels = %d, expected %d", len(view.RowLabels), len(ct.RowLabels))
	}
}

func TestSurveyFilteredFrequency(t *testing.T) {
	s, err := Load(writeSurveyWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ft, _, err := s.FilteredFrequency("Hobby", "Reading", "Gender", DefaultOptions())
	if err != nil {
		t.Fatalf("FilteredFrequency failed: %v", err)
	}
	if ft.Total != 2 {
		t.Errorf("filtered total = %d, expected 2", ft.Total)
	}
}

func TestOptionsDisplayParamsClamp(t *testing.T) {
	topN := 1
	maxLabel := 500
	opts := Options{TopN: &topN, MaxLabelLen: &maxLabel}

	p := opts.DisplayParams()
	if p.TopN != 5 || p.MaxLabelLen != 60 {
		t.Errorf("params = %+v, expected TopN 5 and MaxLabelLen 60", p)
	}
}
