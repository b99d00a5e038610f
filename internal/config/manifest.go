package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest describes the tab set the demo program displays, loaded from
// a tabs.toml next to the config file.
type Manifest struct {
	Tabs []TabEntry `toml:"tabs"`
}

// TabEntry is one [[tabs]] block. Title and icons may be empty; the
// widget renders blanks for them.
type TabEntry struct {
	Title        string `toml:"title"`
	Icon         string `toml:"icon"`
	SelectedIcon string `toml:"selected_icon"`
	Body         string `toml:"body"`
}

// LoadManifest reads and decodes a TOML tab manifest.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// DiscoverManifest returns the path of tabs.toml in dir, or "" if the
// file does not exist (the demo falls back to a built-in tab set).
func DiscoverManifest(dir string) string {
	path := filepath.Join(dir, "tabs.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
