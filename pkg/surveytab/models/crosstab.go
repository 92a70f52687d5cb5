package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Metric selects how aggregated cells are expressed.
type Metric string

const (
	// MetricCounts shows raw counts.
	MetricCounts Metric = "counts"
	// MetricRowPercent normalizes each crosstab row to sum to 100.
	MetricRowPercent Metric = "row%"
	// MetricColPercent normalizes each crosstab column to sum to 100.
	MetricColPercent Metric = "col%"
)

// ParseMetric parses a user-supplied metric name.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "counts", "count":
		return MetricCounts, nil
	case "row%", "row":
		return MetricRowPercent, nil
	case "col%", "col":
		return MetricColPercent, nil
	}
	return "", fmt.Errorf("invalid metric: %s (must be counts, row%%, or col%%)", s)
}

// Crosstab is a two-dimensional count matrix over the distinct values of
// two SA columns, with an optional percentage view. Labels are sorted
// lexicographically on both axes.
type Crosstab struct {
	// RowQuestion is the SA column spanning the rows.
	RowQuestion string `json:"row_question"`
	// ColQuestion is the SA column spanning the columns.
	ColQuestion string `json:"col_question"`
	// Metric records which view Cells holds.
	Metric Metric `json:"metric"`
	// RowLabels are the distinct row values (NoAnswer included), sorted.
	RowLabels []string `json:"row_labels"`
	// ColLabels are the distinct column values, sorted.
	ColLabels []string `json:"col_labels"`
	// Counts is the raw co-occurrence matrix, zero-filled.
	Counts [][]int `json:"counts"`
	// Cells is the Metric view of Counts. Percent cells with a zero
	// denominator are NaN (undefined, serialized as null).
	Cells [][]float64 `json:"cells"`
}

// RowTotal returns the count sum of row i.
func (c *Crosstab) RowTotal(i int) int {
	total := 0
	for _, n := range c.Counts[i] {
		total += n
	}
	return total
}

// ColTotal returns the count sum of column j.
func (c *Crosstab) ColTotal(j int) int {
	total := 0
	for _, row := range c.Counts {
		total += row[j]
	}
	return total
}

// MarshalJSON serializes the crosstab with NaN cells as null, since
// encoding/json rejects NaN.
func (c *Crosstab) MarshalJSON() ([]byte, error) {
	type crosstabJSON struct {
		RowQuestion string       `json:"row_question"`
		ColQuestion string       `json:"col_question"`
		Metric      Metric       `json:"metric"`
		RowLabels   []string     `json:"row_labels"`
		ColLabels   []string     `json:"col_labels"`
		Counts      [][]int      `json:"counts"`
		Cells       [][]*float64 `json:"cells"`
	}

	out := crosstabJSON{
		RowQuestion: c.RowQuestion,
		ColQuestion: c.ColQuestion,
		Metric:      c.Metric,
		RowLabels:   c.RowLabels,
		ColLabels:   c.ColLabels,
		Counts:      c.Counts,
		Cells:       make([][]*float64, len(c.Cells)),
	}
	for i, row := range c.Cells {
		out.Cells[i] = make([]*float64, len(row))
		for j := range row {
			if math.IsNaN(row[j]) {
				continue
			}
			v := row[j]
			out.Cells[i][j] = &v
		}
	}
	return json.Marshal(out)
}
