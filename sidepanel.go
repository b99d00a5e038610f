package tabnav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kbenton/tabnav/styles"
	"github.com/kbenton/tabnav/text"
)

// SidePanel renders the tab set as a fixed-width, single-column list of
// selectable rows, plus a non-selectable spacer reserving the system
// top inset and an optional header region. It is a pure render target:
// its highlighted row is always pushed in by the controller, never
// decided locally.
type SidePanel struct {
	zones *zone.Manager
	items []Item

	selected int // -1: no row marked
	offset   int // first visible row; 0 unless a row was scrolled into view

	width     int
	height    int
	rowHeight int
	topInset  int

	headerHeight    int
	headerSeparated bool
	accessory       Accessory

	accent     lipgloss.TerminalColor
	neutral    lipgloss.TerminalColor
	background lipgloss.TerminalColor
}

func newSidePanel(zones *zone.Manager, items []Item) *SidePanel {
	return &SidePanel{
		zones:      zones,
		items:      items,
		selected:   -1,
		rowHeight:  1,
		accent:     styles.Accent,
		neutral:    styles.Neutral,
		background: styles.PanelBack,
	}
}

// RowCount reports the number of selectable rows.
func (p *SidePanel) RowCount() int { return len(p.items) }

// Selected reports the highlighted row, -1 if none is marked.
func (p *SidePanel) Selected() int { return p.selected }

// IsRowSelected reports whether row i is the highlighted one.
func (p *SidePanel) IsRowSelected(i int) bool { return i >= 0 && i == p.selected }

// RowTitle returns the label rendered for row i, blank when the item
// has no title or i is out of range.
func (p *SidePanel) RowTitle(i int) string {
	if i < 0 || i >= len(p.items) {
		return ""
	}
	return p.items[i].Title
}

// Select marks row i as highlighted. Called by the controller; the
// panel itself never originates a selection.
func (p *SidePanel) Select(i int) {
	if i < 0 || i >= len(p.items) {
		p.selected = -1
		return
	}
	p.selected = i
}

// SetSize sets the panel's outer dimensions in cells.
func (p *SidePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.clampOffset()
}

// SetRowHeight applies a uniform row height. Takes effect on the next
// render pass.
func (p *SidePanel) SetRowHeight(h int) {
	if h < 1 {
		h = 1
	}
	p.rowHeight = h
	p.clampOffset()
}

// SetTopInset reserves rows at the top of the panel for the system
// overlay. Recomputed by the controller on every environment change.
func (p *SidePanel) SetTopInset(inset int) {
	if inset < 0 {
		inset = 0
	}
	p.topInset = inset
	p.clampOffset()
}

func (p *SidePanel) setHeader(height int, separated bool) {
	p.headerHeight = height
	p.headerSeparated = separated
	p.clampOffset()
}

func (p *SidePanel) setAccessory(a Accessory) { p.accessory = a }

// SetAccent sets the tint applied to the selected row's icon and label.
func (p *SidePanel) SetAccent(c lipgloss.TerminalColor) { p.accent = c }

// SetBackground sets the panel background tint.
func (p *SidePanel) SetBackground(c lipgloss.TerminalColor) { p.background = c }

// ScrollRowIntoView scrolls row i to the top of the rows area, clamped
// so the list never scrolls past its last page.
func (p *SidePanel) ScrollRowIntoView(i int) {
	if i < 0 || i >= len(p.items) {
		return
	}
	p.offset = i
	p.clampOffset()
}

func (p *SidePanel) clampOffset() {
	maxOffset := len(p.items) - p.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

func (p *SidePanel) rowsAreaHeight() int {
	h := p.height - p.topInset - p.headerHeight
	if h < 0 {
		h = 0
	}
	return h
}

func (p *SidePanel) visibleRows() int {
	if p.rowHeight <= 0 {
		return 0
	}
	return p.rowsAreaHeight() / p.rowHeight
}

// View renders the full panel column: inset spacer, header region, then
// the rows, padded to exactly width x height cells.
func (p *SidePanel) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	fill := styles.PanelStyle.Background(p.background).Width(p.width)
	blank := fill.Render("")

	lines := make([]string, 0, p.height)
	for i := 0; i < p.topInset && len(lines) < p.height; i++ {
		lines = append(lines, blank)
	}

	if p.headerHeight > 0 {
		for _, l := range p.headerLines() {
			if len(lines) >= p.height {
				break
			}
			lines = append(lines, l)
		}
	}

	remaining := p.height - len(lines)
	rows := p.rowLines(remaining)
	lines = append(lines, rows...)

	for len(lines) < p.height {
		lines = append(lines, blank)
	}

	return strings.Join(lines, "\n")
}

// headerLines renders the header region: the accessory centered within
// the panel width, its height clamped to the region height minus a one
// row margin. An unsized accessory is constrained to twice as many
// columns as it has rows, the cell-grid analog of a square.
func (p *SidePanel) headerLines() []string {
	fill := styles.PanelStyle.Background(p.background).Width(p.width)
	style := styles.HeaderStyle.Background(p.background)

	body := p.headerHeight
	if p.headerSeparated && body > 1 {
		body--
	}

	lines := make([]string, 0, p.headerHeight)
	if p.accessory != nil {
		maxLines := body - 1
		if maxLines < 1 {
			maxLines = 1
		}
		content := strings.Split(p.accessory.View(), "\n")
		if len(content) > maxLines {
			content = content[:maxLines]
		}
		maxCols := 2 * len(content)
		if maxCols > p.width {
			maxCols = p.width
		}
		if sized, ok := p.accessory.(interface{ Width() int }); ok {
			if w := sized.Width(); w > 0 && w < maxCols {
				maxCols = w
			}
		}
		pad := (body - len(content)) / 2
		for i := 0; i < pad; i++ {
			lines = append(lines, fill.Render(""))
		}
		for _, l := range content {
			l = text.Truncate(l, maxCols)
			lines = append(lines, style.Render(text.Center(l, p.width)))
		}
	}
	for len(lines) < body {
		lines = append(lines, fill.Render(""))
	}

	if p.headerSeparated && p.headerHeight > 1 {
		sep := styles.PanelStyle.
			Foreground(styles.PanelBorder).
			Background(p.background).
			Render(strings.Repeat("─", p.width))
		lines = append(lines, sep)
	}

	return lines[:p.headerHeight]
}

// rowLines renders the visible rows into at most budget lines.
func (p *SidePanel) rowLines(budget int) []string {
	fill := styles.PanelStyle.Background(p.background).Width(p.width)

	var lines []string
	for i := p.offset; i < len(p.items); i++ {
		if len(lines)+p.rowHeight > budget {
			break
		}
		row := p.renderRow(i)
		lines = append(lines, strings.Split(row, "\n")...)
	}
	for len(lines) < budget {
		lines = append(lines, fill.Render(""))
	}
	return lines
}

// renderRow renders one row: icon stacked above label, centered as a
// unit both horizontally and vertically within the row height.
func (p *SidePanel) renderRow(i int) string {
	item := p.items[i]
	selected := i == p.selected

	style := styles.UnselectedRowStyle.Foreground(p.neutral).Background(p.background)
	if selected {
		style = styles.SelectedRowStyle.Foreground(p.accent).Background(p.background)
	}
	fill := styles.PanelStyle.Background(p.background).Width(p.width)

	unit := []string{item.icon(selected), item.Title}
	if p.rowHeight == 1 {
		unit = []string{item.Title}
	}
	padTop := (p.rowHeight - len(unit)) / 2

	lines := make([]string, 0, p.rowHeight)
	for r := 0; r < padTop; r++ {
		lines = append(lines, fill.Render(""))
	}
	for _, u := range unit {
		if len(lines) >= p.rowHeight {
			break
		}
		lines = append(lines, style.Render(text.Center(u, p.width)))
	}
	for len(lines) < p.rowHeight {
		lines = append(lines, fill.Render(""))
	}

	return p.zones.Mark(rowZoneID(i), strings.Join(lines, "\n"))
}
