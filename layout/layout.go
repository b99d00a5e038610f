package layout

// Geometry holds the computed cell dimensions for the selector widgets
// and the content region. It is a pure function of its inputs: callers
// replace the whole value on every recompute instead of mutating fields,
// so repeated rebuilds can never accumulate stale constraints.
type Geometry struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	// Side panel (valid when UseSidePanel)
	UseSidePanel bool
	PanelWidth   int
	PanelHeight  int

	// Bottom bar (valid when !UseSidePanel)
	BarWidth  int
	BarHeight int

	// Header region atop the panel column. Zero when the header region
	// is disabled or the bottom bar is the visible selector.
	HeaderWidth  int
	HeaderHeight int

	// Rows reserved at the very top for the system overlay
	TopInset int

	RowHeight int

	// Content region
	ContentX      int
	ContentY      int
	ContentWidth  int
	ContentHeight int
}

// Metrics are the host-configurable layout inputs.
type Metrics struct {
	SidePanelWidth    int
	RowHeight         int
	ShowsHeaderRegion bool
	HeaderSeparated   bool
	TopInset          int
}

const (
	MinWidth  = 40
	MinHeight = 10

	// Header region height presets, switched on the vertical size class.
	HeaderHeightRegular = 3
	HeaderHeightCompact = 2

	// Fixed bottom bar height: one icon line, one label line.
	BarHeight = 2

	DefaultSidePanelWidth = 24
	DefaultRowHeight      = 3
)

// Calculate computes selector and content geometry from terminal size.
// useSidePanel picks which selector the geometry is built around;
// verticalCompact selects the header height preset. Returns Geometry
// with TooSmall=true if under minimum.
func Calculate(m Metrics, useSidePanel, verticalCompact bool, termWidth, termHeight int) Geometry {
	g := Geometry{
		TermWidth:    termWidth,
		TermHeight:   termHeight,
		UseSidePanel: useSidePanel,
		RowHeight:    m.RowHeight,
		TopInset:     m.TopInset,
	}
	if g.RowHeight <= 0 {
		g.RowHeight = DefaultRowHeight
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		g.TooSmall = true
		return g
	}

	panelWidth := m.SidePanelWidth
	if panelWidth <= 0 {
		panelWidth = DefaultSidePanelWidth
	}
	if panelWidth > termWidth/2 {
		panelWidth = termWidth / 2
	}

	if useSidePanel {
		if m.ShowsHeaderRegion {
			if verticalCompact {
				g.HeaderHeight = HeaderHeightCompact
			} else {
				g.HeaderHeight = HeaderHeightRegular
			}
		}
		g.PanelWidth = panelWidth
		g.PanelHeight = termHeight
		g.HeaderWidth = panelWidth

		// Content leading edge aligns with the panel trailing edge.
		g.ContentX = panelWidth
		g.ContentY = 0
		g.ContentWidth = termWidth - panelWidth
		g.ContentHeight = termHeight
	} else {
		g.BarWidth = termWidth
		g.BarHeight = BarHeight

		// Content fills the full width between the inset and the bar.
		g.ContentX = 0
		g.ContentY = m.TopInset
		g.ContentWidth = termWidth
		g.ContentHeight = termHeight - m.TopInset - BarHeight
	}

	if g.ContentHeight < 0 {
		g.ContentHeight = 0
	}
	if g.ContentWidth < 0 {
		g.ContentWidth = 0
	}

	return g
}
