// Package config holds the tool configuration: default values for the
// tabulation parameters that flags override per invocation.
package config

import (
	"fmt"

	"github.com/surveytab/surveytab/pkg/surveytab/display"
	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

// Config is the complete tool configuration.
type Config struct {
	// TopN is the default number of display rows before the Other bucket.
	TopN int `yaml:"top_n"`
	// MaxLabelLen is the default display label length limit in runes.
	MaxLabelLen int `yaml:"max_label_len"`
	// Metric is the default crosstab metric: counts, row% or col%.
	Metric string `yaml:"metric"`
	// Format is the default output format: text, json, csv or markdown.
	Format string `yaml:"format"`
	// Sheet names the worksheet to read; empty picks automatically.
	Sheet string `yaml:"sheet"`
	// ColorMode controls terminal colors: auto, always or never.
	ColorMode string `yaml:"color_mode"`
}

// DefaultConfig returns a configuration with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TopN:        display.TopNDefault,
		MaxLabelLen: display.MaxLabelDefault,
		Metric:      string(models.MetricCounts),
		Format:      "text",
		ColorMode:   "auto",
	}
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	if c.TopN < display.TopNMin || c.TopN > display.TopNMax {
		return fmt.Errorf("top_n must be between %d and %d, got %d",
			display.TopNMin, display.TopNMax, c.TopN)
	}
	if c.MaxLabelLen < display.MaxLabelMin || c.MaxLabelLen > display.MaxLabelMax {
		return fmt.Errorf("max_label_len must be between %d and %d, got %d",
			display.MaxLabelMin, display.MaxLabelMax, c.MaxLabelLen)
	}
	if _, err := models.ParseMetric(c.Metric); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json", "csv", "markdown":
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, csv, or markdown)", c.Format)
	}
	switch c.ColorMode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color_mode: %s (must be auto, always, or never)", c.ColorMode)
	}
	return nil
}
