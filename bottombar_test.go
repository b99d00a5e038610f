package tabnav

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

func newTestBar(n int) (*BottomBar, *zone.Manager) {
	zones := zone.New()
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Title: fmt.Sprintf("Tab %d", i+1), Icon: "○"}
	}
	return newBottomBar(zones, items), zones
}

func TestBottomBarViewDimensions(t *testing.T) {
	b, zones := newTestBar(4)
	b.SetSize(80)
	b.Select(0)

	lines := strings.Split(zones.Scan(b.View()), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count=%d, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 80 {
			t.Errorf("line %d: width=%d, want 80 (off by %+d)", i, w, w-80)
		}
	}
}

func TestBottomBarUnevenWidthAbsorbedByLastSegment(t *testing.T) {
	// 80 / 3 leaves a remainder; the bar must still span the full width.
	b, zones := newTestBar(3)
	b.SetSize(80)
	b.Select(1)

	for i, line := range strings.Split(zones.Scan(b.View()), "\n") {
		if w := lipgloss.Width(line); w != 80 {
			t.Errorf("line %d: width=%d, want 80", i, w)
		}
	}
}

func TestBottomBarEmptySet(t *testing.T) {
	b, zones := newTestBar(0)
	b.SetSize(40)

	lines := strings.Split(zones.Scan(b.View()), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count=%d, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d: width=%d, want 40", i, w)
		}
	}
}

func TestBottomBarAllLabelsRendered(t *testing.T) {
	b, zones := newTestBar(4)
	b.SetSize(80)

	view := zones.Scan(b.View())
	for i := 1; i <= 4; i++ {
		if !strings.Contains(view, fmt.Sprintf("Tab %d", i)) {
			t.Errorf("label Tab %d missing", i)
		}
	}
}

func TestBottomBarSelectOutOfRange(t *testing.T) {
	b, _ := newTestBar(3)
	b.Select(1)
	b.Select(-2)
	if b.Selected() != -1 {
		t.Errorf("selected=%d, want -1", b.Selected())
	}
}

func TestBottomBarZeroWidth(t *testing.T) {
	b, _ := newTestBar(3)
	if got := b.View(); got != "" {
		t.Errorf("zero-width view=%q, want empty", got)
	}
}
