package surveytab

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/surveytab/surveytab/pkg/surveytab/aggregate"
	"github.com/surveytab/surveytab/pkg/surveytab/classify"
	"github.com/surveytab/surveytab/pkg/surveytab/display"
	"github.com/surveytab/surveytab/pkg/surveytab/models"
	"github.com/surveytab/surveytab/pkg/surveytab/parser"
)

// Survey is one loaded dataset with its column classification. Both are
// derived once per load and read-only afterwards; every tabulation is
// recomputed from them on demand.
type Survey struct {
	Table   *models.Table
	Classes *models.Classification
}

// Load reads a survey workbook into a Survey. The first row of the
// chosen sheet is the header row; the classification pass runs once
// here and is shared by all later tabulations.
func Load(path string, opts Options) (*Survey, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet, err = parser.PickSheet(f)
		if err != nil {
			return nil, err
		}
	}

	table, err := parser.ReadTable(f, sheet)
	if err != nil {
		return nil, err
	}
	table.Source = filepath.Base(path)

	return &Survey{
		Table:   table,
		Classes: classify.Classify(table),
	}, nil
}

// SAFrequency computes the answer distribution of an SA column together
// with its display reduction.
func (s *Survey) SAFrequency(column string, opts Options) (*models.FrequencyTable, *models.DisplayTable, error) {
	ft, err := aggregate.SADistribution(s.Table, column)
	if err != nil {
		return nil, nil, NewTabulateError("sa", column, err)
	}
	dt, err := display.Build(ft, models.MetricCounts, opts.DisplayParams())
	if err != nil {
		return nil, nil, NewTabulateError("sa", column, err)
	}
	return ft, dt, nil
}

// MAFrequency computes per-option selection counts for an MA group with
// its display reduction. It returns ErrNoMAGroups when the table has no
// groups at all.
func (s *Survey) MAFrequency(question string, opts Options) (*models.FrequencyTable, *models.DisplayTable, error) {
	if !s.Classes.HasGroups() {
		return nil, nil, ErrNoMAGroups
	}
	g, err := s.Classes.Group(question)
	if err != nil {
		return nil, nil, NewTabulateError("ma", question, err)
	}
	ft, err := aggregate.MAOptionCounts(s.Table, g)
	if err != nil {
		return nil, nil, NewTabulateError("ma", question, err)
	}
	dt, err := display.Build(ft, models.MetricCounts, opts.DisplayParams())
	if err != nil {
		return nil, nil, NewTabulateError("ma", question, err)
	}
	return ft, dt, nil
}

// CrossTabulate builds an SA x SA crosstab in the requested metric with
// its display reduction.
func (s *Survey) CrossTabulate(rowColumn, colColumn string, opts Options) (*models.Crosstab, *models.DisplayCrosstab, error) {
	question := rowColumn + " x " + colColumn
	ct, err := aggregate.CrossTab(s.Table, rowColumn, colColumn, opts.EffectiveMetric())
	if err != nil {
		return nil, nil, NewTabulateError("sa_x_sa", question, err)
	}
	view, err := display.BuildCrosstab(ct, opts.DisplayParams())
	if err != nil {
		return nil, nil, NewTabulateError("sa_x_sa", question, err)
	}
	return ct, view, nil
}

// FilteredFrequency computes the SA distribution of a column over the
// respondents who selected one MA option. The metric picks the value
// series of the display view (counts or percentages).
func (s *Survey) FilteredFrequency(question, option, saColumn string, opts Options) (*models.FrequencyTable, *models.DisplayTable, error) {
	if !s.Classes.HasGroups() {
		return nil, nil, ErrNoMAGroups
	}
	ft, err := aggregate.FilteredSADistribution(s.Table, s.Classes, question, option, saColumn)
	if err != nil {
		return nil, nil, NewTabulateError("sa_x_ma", saColumn, err)
	}
	dt, err := display.Build(ft, opts.EffectiveMetric(), opts.DisplayParams())
	if err != nil {
		return nil, nil, NewTabulateError("sa_x_ma", saColumn, err)
	}
	return ft, dt, nil
}
