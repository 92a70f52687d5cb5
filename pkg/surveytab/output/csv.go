package output

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// csvFormatter renders the analytic tables as CSV. Display reductions
// are a charting concern and are omitted here.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter.
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) FormatFrequency(ft *models.FrequencyTable, _ *models.DisplayTable) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"label", "count", "percent"}); err != nil {
		return nil, err
	}
	for _, row := range ft.Rows {
		record := []string{
			row.Label,
			strconv.Itoa(row.Count),
			strconv.FormatFloat(row.Percent, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return b.Bytes(), w.Error()
}

func (f *csvFormatter) FormatCrosstab(ct *models.Crosstab, _ *models.DisplayCrosstab) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	header := append([]string{ct.RowQuestion + " \\ " + ct.ColQuestion}, ct.ColLabels...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, label := range ct.RowLabels {
		record := make([]string, 0, len(ct.ColLabels)+1)
		record = append(record, label)
		for _, v := range ct.Cells[i] {
			record = append(record, formatCell(v, ct.Metric))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return b.Bytes(), w.Error()
}

func (f *csvFormatter) FormatClassification(c *models.Classification) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"kind", "question", "option"}); err != nil {
		return nil, err
	}
	for _, g := range c.Groups {
		for _, opt := range g.Options {
			if err := w.Write([]string{"ma", g.Question, opt}); err != nil {
				return nil, err
			}
		}
	}
	for _, col := range c.SAColumns {
		if err := w.Write([]string{"sa", col, ""}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return b.Bytes(), w.Error()
}

// formatCell renders one metric cell; undefined percent cells (zero
// denominator) render empty.
func formatCell(v float64, metric models.Metric) string {
	if math.IsNaN(v) {
		return ""
	}
	if metric == models.MetricCounts {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
