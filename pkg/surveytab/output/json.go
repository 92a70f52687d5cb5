package output

import (
	"encoding/json"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// jsonFormatter serializes results as JSON, pairing the analytic table
// with its display reduction.
type jsonFormatter struct {
	pretty bool
}

// NewJSON creates a new JSON formatter.
func NewJSON(pretty bool) Formatter {
	return &jsonFormatter{pretty: pretty}
}

func (f *jsonFormatter) marshal(v interface{}) ([]byte, error) {
	if f.pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func (f *jsonFormatter) FormatFrequency(ft *models.FrequencyTable, view *models.DisplayTable) ([]byte, error) {
	return f.marshal(struct {
		Frequency *models.FrequencyTable `json:"frequency"`
		Display   *models.DisplayTable   `json:"display"`
	}{ft, view})
}

func (f *jsonFormatter) FormatCrosstab(ct *models.Crosstab, view *models.DisplayCrosstab) ([]byte, error) {
	return f.marshal(struct {
		Crosstab *models.Crosstab        `json:"crosstab"`
		Display  *models.DisplayCrosstab `json:"display"`
	}{ct, view})
}

func (f *jsonFormatter) FormatClassification(c *models.Classification) ([]byte, error) {
	return f.marshal(c)
}
