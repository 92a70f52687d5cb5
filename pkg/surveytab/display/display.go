// Package display reduces analytic tables to chart-ready views: Top-N
// collapsing into an "Other" bucket and label shortening. Views are
// deep copies; the analytic tables keep their full breakdown and
// original labels.
package display

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// Params bounds the display reduction. The bounds mirror the sidebar
// sliders of the analysis UI.
type Params struct {
	// TopN is the number of rows kept before the Other bucket.
	TopN int
	// MaxLabelLen is the display label length limit in runes.
	MaxLabelLen int
}

const (
	// TopNMin, TopNMax and TopNDefault bound the Top-N parameter.
	TopNMin     = 5
	TopNMax     = 30
	TopNDefault = 12

	// MaxLabelMin, MaxLabelMax and MaxLabelDefault bound label shortening.
	MaxLabelMin     = 8
	MaxLabelMax     = 60
	MaxLabelDefault = 22
)

// DefaultParams returns the default display parameters.
func DefaultParams() Params {
	return Params{
		TopN:        TopNDefault,
		MaxLabelLen: MaxLabelDefault,
	}
}

// Clamped returns a copy with both parameters forced into their bounds.
func (p Params) Clamped() Params {
	return Params{
		TopN:        clamp(p.TopN, TopNMin, TopNMax),
		MaxLabelLen: clamp(p.MaxLabelLen, MaxLabelMin, MaxLabelMax),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Build derives the display view of a frequency table. The metric picks
// the value series: counts for MetricCounts, percentages otherwise.
func Build(ft *models.FrequencyTable, metric models.Metric, p Params) (*models.DisplayTable, error) {
	p = p.Clamped()

	var source []models.FrequencyRow
	if err := deepcopy.Copy(&source, &ft.Rows); err != nil {
		return nil, err
	}

	valueName := "count"
	if metric != models.MetricCounts {
		valueName = "percent"
	}

	rows := make([]models.DisplayRow, 0, len(source))
	for _, r := range source {
		value := float64(r.Count)
		if valueName == "percent" {
			value = r.Percent
		}
		rows = append(rows, models.DisplayRow{
			Label:    r.Label,
			Original: r.Label,
			Value:    value,
		})
	}

	rows = TopN(rows, p.TopN)
	for i := range rows {
		rows[i].Label = Shorten(rows[i].Label, p.MaxLabelLen)
	}

	return &models.DisplayTable{
		Question:  ft.Question,
		ValueName: valueName,
		Rows:      rows,
	}, nil
}

// BuildCrosstab derives the display view of a crosstab: shortened axis
// labels over a copy of the metric cells. Top-N does not apply to
// crosstabs.
func BuildCrosstab(ct *models.Crosstab, p Params) (*models.DisplayCrosstab, error) {
	p = p.Clamped()

	var cells [][]float64
	if err := deepcopy.Copy(&cells, &ct.Cells); err != nil {
		return nil, err
	}

	view := &models.DisplayCrosstab{
		RowLabels: make([]string, len(ct.RowLabels)),
		ColLabels: make([]string, len(ct.ColLabels)),
		Cells:     cells,
	}
	for i, label := range ct.RowLabels {
		view.RowLabels[i] = Shorten(label, p.MaxLabelLen)
	}
	for j, label := range ct.ColLabels {
		view.ColLabels[j] = Shorten(label, p.MaxLabelLen)
	}
	return view, nil
}

// TopN keeps the first n rows and collapses the rest into one synthetic
// OtherLabel row summing their values. Tables of n rows or fewer pass
// through unchanged.
func TopN(rows []models.DisplayRow, n int) []models.DisplayRow {
	if len(rows) <= n {
		return rows
	}
	other := 0.0
	for _, r := range rows[n:] {
		other += r.Value
	}
	out := make([]models.DisplayRow, n, n+1)
	copy(out, rows[:n])
	return append(out, models.DisplayRow{
		Label:    models.OtherLabel,
		Original: models.OtherLabel,
		Value:    other,
	})
}

// Shorten truncates a label to max runes, replacing the tail with an
// ellipsis. Labels within the limit pass through unchanged, which makes
// the function idempotent.
func Shorten(label string, max int) string {
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max-1]) + models.Ellipsis
}
