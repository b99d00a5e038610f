package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config
// together with the path it was loaded from ("" in defaults-only mode).
func Load() (*Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory for file discovery.
// This is the testable entry point — Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, string, error) {
	cfg := DefaultConfig()

	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, "", fmt.Errorf("config discovery: %w", err)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, "", fmt.Errorf("config validation: %w", err)
	}

	return &cfg, path, nil
}

// LoadFile loads, merges, and validates a single explicit config file.
// Used by the file watcher to re-read a known path.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	override, err := loadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	merge(&cfg, override)
	applyEnvOverrides(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first config
// file that exists. Returns empty string if none found (defaults-only mode).
func discoverConfigPath(dir string) (string, error) {
	// 1. ./tabnav.yaml (relative to the working dir)
	local := filepath.Join(dir, "tabnav.yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	// 2. ~/.config/tabnav/config.yaml
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "tabnav", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

// loadFromFile reads and unmarshals a YAML config file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge deep-merges override onto base. Scalar fields override when non-zero.
// Pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	// Appearance
	if override.Appearance.SidePanelWidth != 0 {
		base.Appearance.SidePanelWidth = override.Appearance.SidePanelWidth
	}
	if override.Appearance.RowHeight != 0 {
		base.Appearance.RowHeight = override.Appearance.RowHeight
	}
	if override.Appearance.ShowsHeader != nil {
		base.Appearance.ShowsHeader = override.Appearance.ShowsHeader
	}
	if override.Appearance.HeaderSeparated != nil {
		base.Appearance.HeaderSeparated = override.Appearance.HeaderSeparated
	}
	if override.Appearance.PanelBackground != "" {
		base.Appearance.PanelBackground = override.Appearance.PanelBackground
	}
	if override.Appearance.AccentTint != "" {
		base.Appearance.AccentTint = override.Appearance.AccentTint
	}
	if override.Appearance.TopInset != 0 {
		base.Appearance.TopInset = override.Appearance.TopInset
	}

	// Behavior
	if override.Behavior.Presentation != "" {
		base.Behavior.Presentation = override.Behavior.Presentation
	}
	if override.Behavior.Mouse != nil {
		base.Behavior.Mouse = override.Behavior.Mouse
	}
	if override.Behavior.WatchConfig != nil {
		base.Behavior.WatchConfig = override.Behavior.WatchConfig
	}
}

// applyEnvOverrides applies TABNAV_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TABNAV_PANEL_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Appearance.SidePanelWidth = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: TABNAV_PANEL_WIDTH=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("TABNAV_ROW_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Appearance.RowHeight = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: TABNAV_ROW_HEIGHT=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("TABNAV_PRESENTATION"); v != "" {
		cfg.Behavior.Presentation = v
	}
}
