// Package surveytab tabulates spreadsheet survey raw data: it classifies
// columns into single-answer (SA) questions and multiple-answer (MA)
// groups, computes frequency tables and crosstabs, and reduces them to
// chart-ready display views.
package surveytab

import (
	"github.com/surveytab/surveytab/pkg/surveytab/display"
	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// Options configures loading and tabulation behavior.
type Options struct {
	// Sheet names the worksheet to read. Empty picks the first sheet
	// with data.
	Sheet string
	// TopN overrides the number of display rows kept before the Other
	// bucket. If nil, the default applies. Values are clamped to the
	// supported range.
	TopN *int
	// MaxLabelLen overrides the display label length limit in runes.
	// If nil, the default applies. Values are clamped.
	MaxLabelLen *int
	// Metric selects the value view (counts, row%, col%). Empty means
	// counts.
	Metric models.Metric
}

// DefaultOptions returns default tabulation options.
func DefaultOptions() Options {
	return Options{Metric: models.MetricCounts}
}

// EffectiveMetric returns the metric, defaulting to counts.
func (o Options) EffectiveMetric() models.Metric {
	if o.Metric == "" {
		return models.MetricCounts
	}
	return o.Metric
}

// DisplayParams resolves the display parameters, applying defaults and
// clamping overrides to their bounds.
func (o Options) DisplayParams() display.Params {
	p := display.DefaultParams()
	if o.TopN != nil {
		p.TopN = *o.TopN
	}
	if o.MaxLabelLen != nil {
		p.MaxLabelLen = *o.MaxLabelLen
	}
	return p.Clamped()
}
