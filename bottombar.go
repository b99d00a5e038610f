package tabnav

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kbenton/tabnav/styles"
	"github.com/kbenton/tabnav/text"
)

// BottomBar is the thin horizontal selector: a two-line bar with one
// equal-width segment per item, icon above label. It carries no state
// of its own beyond rendering inputs; selection and tint always mirror
// what the controller pushes in.
type BottomBar struct {
	zones *zone.Manager
	items []Item

	selected int
	width    int

	tint       lipgloss.TerminalColor
	neutral    lipgloss.TerminalColor
	background lipgloss.TerminalColor
}

func newBottomBar(zones *zone.Manager, items []Item) *BottomBar {
	return &BottomBar{
		zones:      zones,
		items:      items,
		selected:   -1,
		tint:       styles.Accent,
		neutral:    styles.Neutral,
		background: styles.BarBack,
	}
}

// ItemCount reports the number of bar items.
func (b *BottomBar) ItemCount() int { return len(b.items) }

// Selected reports the highlighted item, -1 if none.
func (b *BottomBar) Selected() int { return b.selected }

// Select marks item i as highlighted. Called by the controller.
func (b *BottomBar) Select(i int) {
	if i < 0 || i >= len(b.items) {
		b.selected = -1
		return
	}
	b.selected = i
}

// SetSize sets the bar width in columns.
func (b *BottomBar) SetSize(width int) { b.width = width }

// SetTint sets the selected-item tint, mirroring the panel accent.
func (b *BottomBar) SetTint(c lipgloss.TerminalColor) { b.tint = c }

// SetBackgroundTint sets the bar background.
func (b *BottomBar) SetBackgroundTint(c lipgloss.TerminalColor) { b.background = c }

// View renders the bar as two lines spanning the full width. An empty
// tab set renders a blank bar.
func (b *BottomBar) View() string {
	if b.width <= 0 {
		return ""
	}
	fill := styles.BarStyle.Background(b.background).Width(b.width)
	if len(b.items) == 0 {
		return fill.Render("") + "\n" + fill.Render("")
	}

	segWidth := b.width / len(b.items)
	if segWidth < 1 {
		segWidth = 1
	}

	segments := make([]string, 0, len(b.items))
	used := 0
	for i, item := range b.items {
		w := segWidth
		if i == len(b.items)-1 {
			w = b.width - used
		}
		if w < 1 {
			break
		}
		used += w
		segments = append(segments, b.renderSegment(i, item, w))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (b *BottomBar) renderSegment(i int, item Item, w int) string {
	selected := i == b.selected
	style := styles.UnselectedRowStyle.Foreground(b.neutral).Background(b.background)
	if selected {
		style = styles.SelectedRowStyle.Foreground(b.tint).Background(b.background)
	}

	icon := style.Render(text.Center(item.icon(selected), w))
	label := style.Render(text.Center(item.Title, w))
	return b.zones.Mark(barZoneID(i), icon+"\n"+label)
}
