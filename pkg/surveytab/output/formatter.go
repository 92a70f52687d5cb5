// Package output renders tabulation results for the terminal and for
// machine-readable formats.
package output

import (
	"fmt"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// Formatter renders the three result kinds of a tabulation run.
type Formatter interface {
	FormatFrequency(ft *models.FrequencyTable, view *models.DisplayTable) ([]byte, error)
	FormatCrosstab(ct *models.Crosstab, view *models.DisplayCrosstab) ([]byte, error)
	FormatClassification(c *models.Classification) ([]byte, error)
}

// New creates a formatter for the given format name.
func New(format string, color, pretty bool) (Formatter, error) {
	switch format {
	case "json":
		return NewJSON(pretty), nil
	case "csv":
		return NewCSV(), nil
	case "markdown":
		return NewMarkdown(), nil
	case "text", "":
		return NewTerminal(color), nil
	}
	return nil, fmt.Errorf("invalid format: %s (must be text, json, csv, or markdown)", format)
}
