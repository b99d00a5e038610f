package tabnav

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

func newTestPanel(n int) (*SidePanel, *zone.Manager) {
	zones := zone.New()
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Title: fmt.Sprintf("Tab %d", i+1), Icon: "○", SelectedIcon: "●"}
	}
	return newSidePanel(zones, items), zones
}

// panelLines renders the panel and strips zone markers so visual widths
// can be measured the way a terminal would.
func panelLines(p *SidePanel, zones *zone.Manager) []string {
	return strings.Split(zones.Scan(p.View()), "\n")
}

func TestSidePanelViewDimensions(t *testing.T) {
	p, zones := newTestPanel(4)
	p.SetSize(24, 30)
	p.SetRowHeight(3)
	p.Select(0)

	lines := panelLines(p, zones)
	if len(lines) != 30 {
		t.Fatalf("line count=%d, want 30", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 24 {
			t.Errorf("line %d: width=%d, want 24 (off by %+d)", i, w, w-24)
		}
	}
}

func TestSidePanelEmptySet(t *testing.T) {
	p, zones := newTestPanel(0)
	p.SetSize(24, 10)

	lines := panelLines(p, zones)
	if len(lines) != 10 {
		t.Fatalf("line count=%d, want 10", len(lines))
	}
	if p.Selected() != -1 {
		t.Errorf("selected=%d, want -1", p.Selected())
	}
}

func TestSidePanelMissingIconAndTitle(t *testing.T) {
	zones := zone.New()
	p := newSidePanel(zones, []Item{{}, {Title: "Named"}})
	p.SetSize(20, 12)
	p.SetRowHeight(3)
	p.Select(0)

	lines := panelLines(p, zones)
	if len(lines) != 12 {
		t.Fatalf("line count=%d, want 12", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("line %d: width=%d, want 20", i, w)
		}
	}
	if !strings.Contains(zones.Scan(p.View()), "Named") {
		t.Error("titled row missing from view")
	}
}

func TestSidePanelSelectedIconSwap(t *testing.T) {
	p, zones := newTestPanel(2)
	p.SetSize(24, 12)
	p.SetRowHeight(3)
	p.Select(1)

	view := zones.Scan(p.View())
	if !strings.Contains(view, "●") {
		t.Error("selected icon not rendered")
	}
	if !strings.Contains(view, "○") {
		t.Error("unselected icon not rendered")
	}
}

func TestSidePanelRowHeightOneDropsIcon(t *testing.T) {
	p, zones := newTestPanel(3)
	p.SetSize(24, 10)
	p.SetRowHeight(1)
	p.Select(0)

	view := zones.Scan(p.View())
	if strings.Contains(view, "○") || strings.Contains(view, "●") {
		t.Error("single-line rows should render the label only")
	}
	if !strings.Contains(view, "Tab 1") {
		t.Error("label missing at row height 1")
	}
}

func TestSidePanelSelectOutOfRange(t *testing.T) {
	p, _ := newTestPanel(3)
	p.Select(1)
	p.Select(7)
	if p.Selected() != -1 {
		t.Errorf("selected=%d, want -1 after out-of-range select", p.Selected())
	}
}

func TestSidePanelRowTitle(t *testing.T) {
	p, _ := newTestPanel(2)
	if got := p.RowTitle(1); got != "Tab 2" {
		t.Errorf("RowTitle(1)=%q, want %q", got, "Tab 2")
	}
	if got := p.RowTitle(5); got != "" {
		t.Errorf("RowTitle(5)=%q, want empty", got)
	}
}

func TestScrollRowIntoViewTopAligned(t *testing.T) {
	p, zones := newTestPanel(10)
	p.SetSize(24, 9) // three visible rows at height 3
	p.SetRowHeight(3)
	p.Select(5)

	p.ScrollRowIntoView(5)
	view := zones.Scan(p.View())
	if !strings.Contains(view, "Tab 6") {
		t.Error("scrolled row not visible")
	}
	if strings.Contains(view, "Tab 1") {
		t.Error("rows above the scroll target should be off-screen")
	}

	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[1], "Tab 6") {
		t.Errorf("scrolled row not at the top, first rows:\n%s",
			strings.Join(lines[:3], "\n"))
	}
}

func TestScrollRowIntoViewClampsToLastPage(t *testing.T) {
	p, zones := newTestPanel(10)
	p.SetSize(24, 9)
	p.SetRowHeight(3)

	p.ScrollRowIntoView(9)
	view := zones.Scan(p.View())
	// Offset clamps to 7 so the last page stays full: rows 8, 9, 10.
	for _, want := range []string{"Tab 8", "Tab 9", "Tab 10"} {
		if !strings.Contains(view, want) {
			t.Errorf("last page missing %q", want)
		}
	}
}

func TestSidePanelTopInsetReservesRows(t *testing.T) {
	p, zones := newTestPanel(2)
	p.SetSize(24, 12)
	p.SetRowHeight(3)
	p.SetTopInset(2)

	lines := panelLines(p, zones)
	for i := 0; i < 2; i++ {
		if strings.Contains(lines[i], "Tab") {
			t.Errorf("inset row %d contains a tab row: %q", i, lines[i])
		}
	}
}

func TestSidePanelHeaderRegion(t *testing.T) {
	p, zones := newTestPanel(2)
	p.SetSize(24, 15)
	p.SetRowHeight(3)
	p.setHeader(3, true)
	p.setAccessory(StaticAccessory{Content: "◆◆"})

	view := zones.Scan(p.View())
	if !strings.Contains(view, "◆◆") {
		t.Error("accessory not rendered in header region")
	}
	if !strings.Contains(view, "─") {
		t.Error("separator line missing")
	}

	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 24 {
			t.Errorf("line %d: width=%d, want 24", i, w)
		}
	}
	// Rows start below the header region.
	for i := 0; i < 3; i++ {
		if strings.Contains(lines[i], "Tab") {
			t.Errorf("header row %d contains a tab row", i)
		}
	}
}
