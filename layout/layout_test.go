package layout

import "testing"

func defaultMetrics() Metrics {
	return Metrics{
		SidePanelWidth: DefaultSidePanelWidth,
		RowHeight:      DefaultRowHeight,
	}
}

func TestCalculateSidePanel(t *testing.T) {
	g := Calculate(defaultMetrics(), true, false, 120, 40)

	if g.TooSmall {
		t.Fatal("120x40 should not be too small")
	}
	if !g.UseSidePanel {
		t.Fatal("expected side panel geometry")
	}
	if g.PanelWidth != DefaultSidePanelWidth {
		t.Errorf("panel width=%d, want %d", g.PanelWidth, DefaultSidePanelWidth)
	}
	if g.PanelHeight != 40 {
		t.Errorf("panel height=%d, want 40", g.PanelHeight)
	}
	if g.ContentX != g.PanelWidth {
		t.Errorf("content x=%d, want panel trailing edge %d", g.ContentX, g.PanelWidth)
	}
	if g.PanelWidth+g.ContentWidth != 120 {
		t.Errorf("panel+content width=%d, want 120", g.PanelWidth+g.ContentWidth)
	}
	if g.ContentHeight != 40 {
		t.Errorf("content height=%d, want full 40", g.ContentHeight)
	}
	if g.BarHeight != 0 {
		t.Errorf("bar height=%d, want 0 in panel mode", g.BarHeight)
	}
}

func TestCalculateBottomBar(t *testing.T) {
	g := Calculate(defaultMetrics(), false, false, 80, 24)

	if g.UseSidePanel {
		t.Fatal("expected bottom bar geometry")
	}
	if g.BarWidth != 80 {
		t.Errorf("bar width=%d, want 80", g.BarWidth)
	}
	if g.BarHeight != BarHeight {
		t.Errorf("bar height=%d, want %d", g.BarHeight, BarHeight)
	}
	if g.ContentWidth != 80 {
		t.Errorf("content width=%d, want full 80", g.ContentWidth)
	}
	if g.ContentHeight+g.BarHeight != 24 {
		t.Errorf("content+bar height=%d, want 24", g.ContentHeight+g.BarHeight)
	}
	if g.HeaderHeight != 0 {
		t.Errorf("header height=%d, want 0 in bar mode", g.HeaderHeight)
	}
	if g.PanelWidth != 0 {
		t.Errorf("panel width=%d, want 0 in bar mode", g.PanelWidth)
	}
}

func TestCalculateTopInsetBarMode(t *testing.T) {
	m := defaultMetrics()
	m.TopInset = 2
	g := Calculate(m, false, false, 80, 24)

	if g.ContentY != 2 {
		t.Errorf("content y=%d, want 2", g.ContentY)
	}
	if g.TopInset+g.ContentHeight+g.BarHeight != 24 {
		t.Errorf("inset+content+bar=%d, want 24",
			g.TopInset+g.ContentHeight+g.BarHeight)
	}
}

func TestCalculateHeaderPresets(t *testing.T) {
	m := defaultMetrics()
	m.ShowsHeaderRegion = true

	g := Calculate(m, true, false, 120, 40)
	if g.HeaderHeight != HeaderHeightRegular {
		t.Errorf("regular header height=%d, want %d", g.HeaderHeight, HeaderHeightRegular)
	}
	if g.HeaderWidth != g.PanelWidth {
		t.Errorf("header width=%d, want panel width %d", g.HeaderWidth, g.PanelWidth)
	}

	g = Calculate(m, true, true, 120, 20)
	if g.HeaderHeight != HeaderHeightCompact {
		t.Errorf("compact header height=%d, want %d", g.HeaderHeight, HeaderHeightCompact)
	}
}

func TestCalculateHeaderDisabled(t *testing.T) {
	g := Calculate(defaultMetrics(), true, false, 120, 40)
	if g.HeaderHeight != 0 {
		t.Errorf("header height=%d, want 0 when region disabled", g.HeaderHeight)
	}
}

func TestCalculatePanelWidthClamped(t *testing.T) {
	m := defaultMetrics()
	m.SidePanelWidth = 60
	g := Calculate(m, true, false, 80, 24)

	if g.PanelWidth != 40 {
		t.Errorf("panel width=%d, want clamped to half terminal (40)", g.PanelWidth)
	}
	if g.ContentWidth != 40 {
		t.Errorf("content width=%d, want 40", g.ContentWidth)
	}
}

func TestCalculateTooSmall(t *testing.T) {
	cases := []struct {
		w, h int
		want bool
	}{
		{39, 40, true},
		{120, 9, true},
		{39, 9, true},
		{MinWidth, MinHeight, false},
		{120, 40, false},
	}
	for _, tc := range cases {
		g := Calculate(defaultMetrics(), false, false, tc.w, tc.h)
		if g.TooSmall != tc.want {
			t.Errorf("%dx%d: TooSmall=%v, want %v", tc.w, tc.h, g.TooSmall, tc.want)
		}
	}
}

func TestCalculateZeroMetricsDefaults(t *testing.T) {
	g := Calculate(Metrics{}, true, false, 120, 40)
	if g.PanelWidth != DefaultSidePanelWidth {
		t.Errorf("panel width=%d, want default %d", g.PanelWidth, DefaultSidePanelWidth)
	}
	if g.RowHeight != DefaultRowHeight {
		t.Errorf("row height=%d, want default %d", g.RowHeight, DefaultRowHeight)
	}
}
