package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kbenton/tabnav"
	"github.com/kbenton/tabnav/internal/clipboard"
	"github.com/kbenton/tabnav/internal/config"
)

// ConfigReloadedMsg carries a freshly reloaded config from the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// forcedPresentation pins the visible selector regardless of terminal
// size, wired when behavior.presentation is "panel" or "bar".
type forcedPresentation bool

func (f forcedPresentation) UseSidePanel(_ *tabnav.Controller, _ tabnav.Environment) bool {
	return bool(f)
}

type App struct {
	cfg *config.Config
	nav *tabnav.Controller
}

func NewApp(cfg *config.Config, items []tabnav.Item) App {
	nav := tabnav.New(optionsFrom(cfg))
	nav.Initialize(items)

	switch cfg.Behavior.Presentation {
	case "panel":
		nav.SetPolicyDelegate(forcedPresentation(true))
	case "bar":
		nav.SetPolicyDelegate(forcedPresentation(false))
	}

	if cfg.Appearance.TopInset > 0 {
		env := nav.Env()
		env.TopInset = cfg.Appearance.TopInset
		nav.OnEnvironmentChanged(env)
	}

	return App{cfg: cfg, nav: nav}
}

func optionsFrom(cfg *config.Config) tabnav.Options {
	opts := tabnav.Options{
		SidePanelWidth: cfg.Appearance.SidePanelWidth,
		RowHeight:      cfg.Appearance.RowHeight,
	}
	if cfg.Appearance.ShowsHeader != nil {
		opts.ShowsHeaderRegion = *cfg.Appearance.ShowsHeader
	}
	if cfg.Appearance.HeaderSeparated != nil {
		opts.HeaderSeparated = *cfg.Appearance.HeaderSeparated
	}
	if cfg.Appearance.PanelBackground != "" {
		opts.PanelBackground = lipgloss.Color(cfg.Appearance.PanelBackground)
	}
	if cfg.Appearance.AccentTint != "" {
		opts.AccentTint = lipgloss.Color(cfg.Appearance.AccentTint)
	}
	return opts
}

func (a App) Init() tea.Cmd {
	return a.nav.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "y":
			if i := a.nav.SelectedIndex(); i >= 0 {
				if err := clipboard.Yank(a.nav.Panel().RowTitle(i)); err != nil {
					log.Printf("clipboard: %v", err)
				}
			}
			return a, nil
		}

	case ConfigReloadedMsg:
		a.cfg = msg.Config
		a.nav.SetOptions(optionsFrom(msg.Config))
		env := a.nav.Env()
		env.TopInset = msg.Config.Appearance.TopInset
		a.nav.OnEnvironmentChanged(env)
		return a, nil
	}

	m, cmd := a.nav.Update(msg)
	a.nav = m.(*tabnav.Controller)
	return a, cmd
}

func (a App) View() string {
	return a.nav.View()
}
