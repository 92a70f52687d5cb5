// Package aggregate computes frequency tables and crosstabs from a
// classified survey table. All functions are pure: they never modify
// the table they read.
package aggregate

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// SADistribution computes the answer breakdown of one single-answer
// column. Missing cells count under the NoAnswer label. Rows are sorted
// by descending count; ties keep first-occurrence order in the column.
func SADistribution(t *models.Table, column string) (*models.FrequencyTable, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	return distribution(column, values), nil
}

// MAOptionCounts computes per-option selection counts for an MA group.
// The percentage base is the total respondent count, not total
// selections, so percentages need not sum to 100.
func MAOptionCounts(t *models.Table, g models.MAGroup) (*models.FrequencyTable, error) {
	base := t.RowCount()
	rows := make([]models.FrequencyRow, 0, len(g.Columns))
	total := 0

	for i, column := range g.Columns {
		values, err := t.Column(column)
		if err != nil {
			return nil, err
		}
		n := selectionCount(values)
		total += n
		rows = append(rows, models.FrequencyRow{
			Label:   g.Options[i],
			Count:   n,
			Percent: percent(n, base),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	return &models.FrequencyTable{
		Question:    g.Question,
		Base:        base,
		Total:       total,
		MultiAnswer: true,
		Rows:        rows,
	}, nil
}

// FilteredSADistribution restricts the table to respondents who selected
// the given option of an MA group, then computes the SA distribution of
// another column over that subset. A filter matching no rows yields an
// empty table, not an error.
func FilteredSADistribution(t *models.Table, c *models.Classification, question, option, saColumn string) (*models.FrequencyTable, error) {
	g, err := c.Group(question)
	if err != nil {
		return nil, err
	}
	optionColumn, err := g.OptionColumn(option)
	if err != nil {
		return nil, err
	}
	optionValues, err := t.Column(optionColumn)
	if err != nil {
		return nil, err
	}
	saValues, err := t.Column(saColumn)
	if err != nil {
		return nil, err
	}

	var subset []string
	for i, v := range optionValues {
		if selected(v) {
			subset = append(subset, saValues[i])
		}
	}

	ft := distribution(saColumn, subset)
	ft.Filter = optionColumn
	return ft, nil
}

// distribution builds a frequency table over raw values after applying
// the missing-value policy. Tie order among equal counts is the first
// occurrence in the value sequence.
func distribution(question string, values []string) *models.FrequencyTable {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		label := models.FillMissing(v)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	total := len(values)
	rows := make([]models.FrequencyRow, 0, len(order))
	for _, label := range order {
		rows = append(rows, models.FrequencyRow{
			Label:   label,
			Count:   counts[label],
			Percent: percent(counts[label], total),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	return &models.FrequencyTable{
		Question: question,
		Base:     total,
		Total:    total,
		Rows:     rows,
	}
}

// selected reports whether an MA option cell coerces to exactly 1.
// Missing and non-numeric cells count as non-selections.
func selected(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && f == 1
}

// selectionCount counts the respondents who selected an option column.
func selectionCount(values []string) int {
	n := 0
	for _, v := range values {
		if selected(v) {
			n++
		}
	}
	return n
}

// percent returns 100*count/base rounded to 1 decimal, or 0 for an
// empty base.
func percent(count, base int) float64 {
	if base == 0 {
		return 0
	}
	return round1(100 * float64(count) / float64(base))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
