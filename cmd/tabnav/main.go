package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kbenton/tabnav/internal/config"
)

// Repo is the GitHub slug used for update checks.
const Repo = "kbenton/tabnav"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version":
			runVersion(Repo)
			return
		case "update":
			runUpdate(Repo)
			return
		}
	}

	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	items := demoItems()
	cwd, _ := os.Getwd()
	if path := config.DiscoverManifest(cwd); path != "" {
		manifest, err := config.LoadManifest(path)
		if err != nil {
			log.Printf("warning: %v (using built-in tabs)", err)
		} else if len(manifest.Tabs) > 0 {
			items = manifestItems(manifest)
		}
	}

	app := NewApp(cfg, items)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Behavior.Mouse == nil || *cfg.Behavior.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)

	var watcher *config.Watcher
	if cfgPath != "" && cfg.Behavior.WatchConfig != nil && *cfg.Behavior.WatchConfig {
		watcher, err = config.Watch(cfgPath,
			func(updated *config.Config) { p.Send(ConfigReloadedMsg{Config: updated}) },
			func(err error) { log.Printf("config reload: %v", err) },
		)
		if err != nil {
			log.Printf("warning: config watch: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
