package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"top_n too small", func(c *Config) { c.TopN = 1 }, false},
		{"top_n too large", func(c *Config) { c.TopN = 99 }, false},
		{"max_label_len too small", func(c *Config) { c.MaxLabelLen = 2 }, false},
		{"bad metric", func(c *Config) { c.Metric = "nope" }, false},
		{"bad format", func(c *Config) { c.Format = "xml" }, false},
		{"bad color mode", func(c *Config) { c.ColorMode = "sometimes" }, false},
		{"row percent metric", func(c *Config) { c.Metric = "row%" }, true},
		{"markdown format", func(c *Config) { c.Format = "markdown" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "top_n: 7\nmetric: col%\nformat: json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TopN != 7 || cfg.Metric != "col%" || cfg.Format != "json" {
		t.Errorf("loaded config = %+v, expected overrides applied", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.MaxLabelLen != DefaultConfig().MaxLabelLen {
		t.Errorf("max_label_len = %d, expected default %d", cfg.MaxLabelLen, DefaultConfig().MaxLabelLen)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("top_n: 1000\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected out-of-bounds config to fail validation")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
