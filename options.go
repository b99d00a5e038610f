package tabnav

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kbenton/tabnav/layout"
	"github.com/kbenton/tabnav/styles"
)

// Options is the host-facing configuration surface. Every field may be
// changed after construction through Controller.SetOptions, which
// triggers a full relayout. The zero value selects all defaults.
type Options struct {
	// SidePanelWidth is the fixed panel width in columns. Default 24.
	SidePanelWidth int

	// RowHeight is the uniform panel row height in rows. Default 3.
	RowHeight int

	// ShowsHeaderRegion enables the header region above the content
	// (atop the panel column when the panel is visible). Default false.
	ShowsHeaderRegion bool

	// HeaderSeparated draws a separator between the header region and
	// the panel rows. Default false.
	HeaderSeparated bool

	// PanelBackground overrides the panel background color.
	PanelBackground lipgloss.TerminalColor

	// AccentTint overrides the selected-row tint. Defaults to the
	// theme accent, shared with the bottom bar.
	AccentTint lipgloss.TerminalColor

	// Policy replaces the built-in default policy. It is still only a
	// fallback: a registered PolicyDelegate wins over both.
	Policy Policy
}

func (o Options) withDefaults() Options {
	if o.SidePanelWidth <= 0 {
		o.SidePanelWidth = layout.DefaultSidePanelWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = layout.DefaultRowHeight
	}
	if o.PanelBackground == nil {
		o.PanelBackground = styles.PanelBack
	}
	if o.AccentTint == nil {
		o.AccentTint = styles.Accent
	}
	if o.Policy == nil {
		o.Policy = DefaultPolicy
	}
	return o
}

func (o Options) metrics(topInset int) layout.Metrics {
	return layout.Metrics{
		SidePanelWidth:    o.SidePanelWidth,
		RowHeight:         o.RowHeight,
		ShowsHeaderRegion: o.ShowsHeaderRegion,
		HeaderSeparated:   o.HeaderSeparated,
		TopInset:          topInset,
	}
}
