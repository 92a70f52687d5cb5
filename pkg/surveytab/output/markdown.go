package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// markdownFormatter renders results as Markdown: the analytic table
// with original labels first, then the chart-ready display view.
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter.
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) FormatFrequency(ft *models.FrequencyTable, view *models.DisplayTable) ([]byte, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", ft.Question))
	if ft.Filter != "" {
		b.WriteString(fmt.Sprintf("Respondents filtered by %q.\n\n", ft.Filter))
	}
	if ft.MultiAnswer {
		b.WriteString(fmt.Sprintf("Multiple answers; percentages are shares of %d respondents.\n\n", ft.Base))
	}

	b.WriteString("| Answer | Count | % |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, row := range ft.Rows {
		b.WriteString(fmt.Sprintf("| %s | %d | %.1f |\n", escapePipes(row.Label), row.Count, row.Percent))
	}

	b.WriteString(fmt.Sprintf("\n## Display (top %d)\n\n", len(view.Rows)))
	b.WriteString(fmt.Sprintf("| Label | %s |\n", view.ValueName))
	b.WriteString("|---|---:|\n")
	for _, row := range view.Rows {
		b.WriteString(fmt.Sprintf("| %s | %s |\n", escapePipes(row.Label), formatValue(row.Value, view.ValueName)))
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatCrosstab(ct *models.Crosstab, view *models.DisplayCrosstab) ([]byte, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s x %s (%s)\n\n", ct.RowQuestion, ct.ColQuestion, ct.Metric))

	b.WriteString("| |")
	for _, label := range view.ColLabels {
		b.WriteString(" " + escapePipes(label) + " |")
	}
	b.WriteString("\n|---|")
	for range view.ColLabels {
		b.WriteString("---:|")
	}
	b.WriteString("\n")

	for i, label := range view.RowLabels {
		b.WriteString("| " + escapePipes(label) + " |")
		for _, v := range ct.Cells[i] {
			if math.IsNaN(v) {
				b.WriteString(" - |")
			} else if ct.Metric == models.MetricCounts {
				b.WriteString(fmt.Sprintf(" %d |", int(v)))
			} else {
				b.WriteString(fmt.Sprintf(" %.1f |", v))
			}
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatClassification(c *models.Classification) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Question Classification\n\n")
	b.WriteString(fmt.Sprintf("## MA groups (%d)\n\n", len(c.Groups)))
	for _, g := range c.Groups {
		b.WriteString(fmt.Sprintf("- **%s**: %s\n", g.Question, strings.Join(g.Options, ", ")))
	}
	b.WriteString(fmt.Sprintf("\n## SA columns (%d)\n\n", len(c.SAColumns)))
	for _, col := range c.SAColumns {
		b.WriteString(fmt.Sprintf("- %s\n", col))
	}

	return []byte(b.String()), nil
}

func formatValue(v float64, valueName string) string {
	if valueName == "percent" {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%d", int(v))
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
