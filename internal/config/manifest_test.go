package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tabs.toml")
	data := `
[[tabs]]
title = "Home"
icon = "⌂"
body = "Welcome."

[[tabs]]
title = "Search"
icon = "○"
selected_icon = "●"
`
	os.WriteFile(path, []byte(data), 0644)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if len(m.Tabs) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(m.Tabs))
	}
	if m.Tabs[0].Title != "Home" || m.Tabs[0].Body != "Welcome." {
		t.Errorf("unexpected first tab: %+v", m.Tabs[0])
	}
	if m.Tabs[1].SelectedIcon != "●" {
		t.Errorf("expected selected icon, got %q", m.Tabs[1].SelectedIcon)
	}
}

func TestLoadManifestInvalidTOML(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tabs.toml")
	os.WriteFile(path, []byte("[[tabs"), 0644)

	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestDiscoverManifest(t *testing.T) {
	tmp := t.TempDir()
	if got := DiscoverManifest(tmp); got != "" {
		t.Errorf("expected no manifest, got %q", got)
	}

	path := filepath.Join(tmp, "tabs.toml")
	os.WriteFile(path, []byte(""), 0644)
	if got := DiscoverManifest(tmp); got != path {
		t.Errorf("expected %q, got %q", path, got)
	}
}
