package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kbenton/tabnav"
	"github.com/kbenton/tabnav/internal/config"
	"github.com/kbenton/tabnav/styles"
)

// textContent is the demo content model: a titled block of text.
type textContent struct {
	title string
	body  string
}

func (t textContent) Init() tea.Cmd                           { return nil }
func (t textContent) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return t, nil }

func (t textContent) View() string {
	title := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true).
		Padding(1, 2, 0, 2).
		Render(t.title)
	body := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Padding(1, 2).
		Render(t.body)
	return title + "\n" + body
}

func demoItems() []tabnav.Item {
	return []tabnav.Item{
		{Title: "Home", Icon: "⌂", SelectedIcon: "⌂", Content: textContent{title: "Home", body: "Resize the terminal to switch between the side panel and the bottom bar."}},
		{Title: "Search", Icon: "○", SelectedIcon: "●", Content: textContent{title: "Search", body: "Click a tab, press Tab to cycle, or press 1-9 to jump."}},
		{Title: "Library", Icon: "▤", Content: textContent{title: "Library", body: "Tab titles and icons come from tabs.toml when present."}},
		{Title: "Settings", Icon: "⚙", Content: textContent{title: "Settings", body: "Appearance lives in tabnav.yaml; enable watch_config for live reload."}},
	}
}

func manifestItems(m *config.Manifest) []tabnav.Item {
	items := make([]tabnav.Item, 0, len(m.Tabs))
	for _, t := range m.Tabs {
		items = append(items, tabnav.Item{
			Title:        t.Title,
			Icon:         t.Icon,
			SelectedIcon: t.SelectedIcon,
			Content:      textContent{title: t.Title, body: t.Body},
		})
	}
	return items
}
