// Package classify detects multiple-answer question groups among the
// columns of a survey table.
package classify

import (
	"strconv"
	"strings"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// optionSeparator splits "Question - Option" column names.
const optionSeparator = " - "

// SplitOption splits a column name into its question prefix and option
// suffix on the first " - " separator. Both parts are whitespace-trimmed.
// ok is false when the name carries no separator or either part is empty.
func SplitOption(name string) (question, option string, ok bool) {
	q, opt, found := strings.Cut(name, optionSeparator)
	if !found {
		return "", "", false
	}
	q = strings.TrimSpace(q)
	opt = strings.TrimSpace(opt)
	if q == "" || opt == "" {
		return "", "", false
	}
	return q, opt, true
}

// binaryLike reports whether a column holds only 0/1 values once missing
// cells are dropped and non-numeric cells are discarded from the check.
// A column with no numeric values left is not binary-like.
func binaryLike(values []string) bool {
	seen := false
	for _, v := range values {
		if models.IsMissing(v) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		if f != 0 && f != 1 {
			return false
		}
		seen = true
	}
	return seen
}

// Classify scans the table columns once and assigns each to either an MA
// group or the SA list. A group needs at least 2 binary option columns
// sharing a question prefix; single matching columns revert to SA.
// An empty table yields an empty classification.
func Classify(t *models.Table) *models.Classification {
	var order []string
	members := make(map[string][]int)

	for i, name := range t.Headers {
		q, _, ok := SplitOption(name)
		if !ok {
			continue
		}
		if !binaryLike(t.ColumnAt(i)) {
			continue
		}
		if _, exists := members[q]; !exists {
			order = append(order, q)
		}
		members[q] = append(members[q], i)
	}

	grouped := make(map[int]bool)
	var groups []models.MAGroup
	for _, q := range order {
		idxs := members[q]
		if len(idxs) < 2 {
			continue
		}
		g := models.MAGroup{Question: q}
		for _, i := range idxs {
			_, opt, _ := SplitOption(t.Headers[i])
			g.Columns = append(g.Columns, t.Headers[i])
			g.Options = append(g.Options, opt)
			grouped[i] = true
		}
		groups = append(groups, g)
	}

	var saColumns []string
	for i, name := range t.Headers {
		if !grouped[i] {
			saColumns = append(saColumns, name)
		}
	}

	return &models.Classification{Groups: groups, SAColumns: saColumns}
}
