package aggregate

import (
	"math"
	"sort"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// CrossTab builds a crosstab of two SA columns with the requested metric
// view. Missing cells count as NoAnswer on both axes. Labels are sorted
// lexicographically; cells with no co-occurrence are zero.
func CrossTab(t *models.Table, rowColumn, colColumn string, metric models.Metric) (*models.Crosstab, error) {
	rowValues, err := t.Column(rowColumn)
	if err != nil {
		return nil, err
	}
	colValues, err := t.Column(colColumn)
	if err != nil {
		return nil, err
	}

	rowLabels, rowIndex := distinctLabels(rowValues)
	colLabels, colIndex := distinctLabels(colValues)

	counts := make([][]int, len(rowLabels))
	for i := range counts {
		counts[i] = make([]int, len(colLabels))
	}
	for i := range rowValues {
		r := rowIndex[models.FillMissing(rowValues[i])]
		c := colIndex[models.FillMissing(colValues[i])]
		counts[r][c]++
	}

	return &models.Crosstab{
		RowQuestion: rowColumn,
		ColQuestion: colColumn,
		Metric:      metric,
		RowLabels:   rowLabels,
		ColLabels:   colLabels,
		Counts:      counts,
		Cells:       metricView(counts, metric),
	}, nil
}

// distinctLabels collects the sorted distinct labels of a value sequence
// after the missing-value policy, plus a label-to-index lookup.
func distinctLabels(values []string) ([]string, map[string]int) {
	seen := make(map[string]bool)
	var labels []string
	for _, v := range values {
		label := models.FillMissing(v)
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	return labels, index
}

// metricView derives the metric cells from a count matrix. Percent cells
// are rounded to 1 decimal; a zero row or column total makes the whole
// row or column NaN (undefined, never an error).
func metricView(counts [][]int, metric models.Metric) [][]float64 {
	cells := make([][]float64, len(counts))
	for i, row := range counts {
		cells[i] = make([]float64, len(row))
	}

	switch metric {
	case models.MetricRowPercent:
		for i, row := range counts {
			total := 0
			for _, n := range row {
				total += n
			}
			for j, n := range row {
				cells[i][j] = cellPercent(n, total)
			}
		}
	case models.MetricColPercent:
		for j := 0; j < width(counts); j++ {
			total := 0
			for i := range counts {
				total += counts[i][j]
			}
			for i := range counts {
				cells[i][j] = cellPercent(counts[i][j], total)
			}
		}
	default:
		for i, row := range counts {
			for j, n := range row {
				cells[i][j] = float64(n)
			}
		}
	}
	return cells
}

func cellPercent(count, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return round1(100 * float64(count) / float64(total))
}

func width(counts [][]int) int {
	if len(counts) == 0 {
		return 0
	}
	return len(counts[0])
}
