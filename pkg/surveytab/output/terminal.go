package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// terminalFormatter renders results as plain terminal text using
// go-termfmt: a summary tree, the analytic table with original labels,
// and a bar rendition of the display view.
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support.
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = false
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) FormatFrequency(ft *models.FrequencyTable, view *models.DisplayTable) ([]byte, error) {
	var b strings.Builder

	b.WriteString(ft.Question + "\n")
	f.writeSummary(&b, ft)

	b.WriteString("Answers\n")
	labelWidth := maxWidth(frequencyLabels(ft))
	for _, row := range ft.Rows {
		b.WriteString(fmt.Sprintf("  %-*s  %6d  %5.1f%%\n", labelWidth, row.Label, row.Count, row.Percent))
	}

	b.WriteString("\nChart\n")
	maxValue := 0.0
	for _, row := range view.Rows {
		if row.Value > maxValue {
			maxValue = row.Value
		}
	}
	displayWidth := maxWidth(displayLabels(view))
	for _, row := range view.Rows {
		bar := termfmt.CreateConfidenceBar(fraction(row.Value, maxValue), f.opts)
		b.WriteString(fmt.Sprintf("  %-*s %s %s\n", displayWidth, row.Label, bar, formatValue(row.Value, view.ValueName)))
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatCrosstab(ct *models.Crosstab, view *models.DisplayCrosstab) ([]byte, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s x %s\n", ct.RowQuestion, ct.ColQuestion))
	items := []termfmt.TreeItem{
		{Label: "Metric", Value: string(ct.Metric)},
		{Label: "Rows", Value: fmt.Sprintf("%d", len(ct.RowLabels))},
		{Label: "Columns", Value: fmt.Sprintf("%d", len(ct.ColLabels)), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	labelWidth := maxWidth(view.RowLabels)
	cellWidth := maxWidth(view.ColLabels)
	if cellWidth < 8 {
		cellWidth = 8
	}

	b.WriteString(fmt.Sprintf("%-*s", labelWidth+2, ""))
	for _, label := range view.ColLabels {
		b.WriteString(fmt.Sprintf("  %*s", cellWidth, label))
	}
	b.WriteString("\n")

	for i, label := range view.RowLabels {
		b.WriteString(fmt.Sprintf("  %-*s", labelWidth, label))
		for _, v := range view.Cells[i] {
			b.WriteString(fmt.Sprintf("  %*s", cellWidth, cellText(v, ct.Metric)))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatClassification(c *models.Classification) ([]byte, error) {
	var b strings.Builder

	b.WriteString("Question Classification\n")
	items := []termfmt.TreeItem{
		{Label: "MA groups", Value: fmt.Sprintf("%d", len(c.Groups))},
		{Label: "SA columns", Value: fmt.Sprintf("%d", len(c.SAColumns)), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	for _, g := range c.Groups {
		b.WriteString(fmt.Sprintf("MA  %s (%d options)\n", g.Question, len(g.Options)))
		for _, opt := range g.Options {
			b.WriteString("      - " + opt + "\n")
		}
	}
	for _, col := range c.SAColumns {
		b.WriteString("SA  " + col + "\n")
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeSummary(b *strings.Builder, ft *models.FrequencyTable) {
	items := []termfmt.TreeItem{
		{Label: "Answers", Value: fmt.Sprintf("%d", len(ft.Rows))},
		{Label: "Total", Value: fmt.Sprintf("%d", ft.Total)},
	}
	if ft.MultiAnswer {
		items = append(items, termfmt.TreeItem{Label: "Respondent base", Value: fmt.Sprintf("%d", ft.Base)})
	}
	if ft.Filter != "" {
		items = append(items, termfmt.TreeItem{Label: "Filter", Value: ft.Filter})
	}
	items[len(items)-1].Last = true
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

func fraction(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

func cellText(v float64, metric models.Metric) string {
	if math.IsNaN(v) {
		return "-"
	}
	if metric == models.MetricCounts {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func frequencyLabels(ft *models.FrequencyTable) []string {
	labels := make([]string, len(ft.Rows))
	for i, row := range ft.Rows {
		labels[i] = row.Label
	}
	return labels
}

func displayLabels(view *models.DisplayTable) []string {
	labels := make([]string, len(view.Rows))
	for i, row := range view.Rows {
		labels[i] = row.Label
	}
	return labels
}

func maxWidth(labels []string) int {
	width := 0
	for _, label := range labels {
		if n := len([]rune(label)); n > width {
			width = n
		}
	}
	return width
}
