package tabnav

import tea "github.com/charmbracelet/bubbletea"

// Item describes one navigation destination. Items are immutable values
// owned by the host; the controller holds a read-only ordered slice of
// them, and slice order is display order.
//
// Title and the icons may be empty: a missing icon or title renders as a
// blank region, never an error. SelectedIcon, when set, replaces Icon
// while the item is selected; otherwise the same glyph is re-tinted.
type Item struct {
	Title        string
	Icon         string
	SelectedIcon string

	// Content is the opaque model activated when the item is selected.
	Content tea.Model
}

func (i Item) icon(selected bool) string {
	if selected && i.SelectedIcon != "" {
		return i.SelectedIcon
	}
	return i.Icon
}
