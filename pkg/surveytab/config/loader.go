package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPaths are the config file search paths in priority order.
var ConfigPaths = []string{
	"./.surveytab.yaml",               // project config (highest priority)
	"~/.config/surveytab/config.yaml", // user config
}

// Load builds the configuration: built-in defaults, overlaid with the
// standard config files, or with customPath alone when it is set.
func Load(customPath string) (*Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		if err := loadFromFile(cfg, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win.
		for i := len(ConfigPaths) - 1; i >= 0; i-- {
			path := expandPath(ConfigPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := loadFromFile(cfg, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load config from %s: %v\n", path, err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
