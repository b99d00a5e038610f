package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	SelectedRowStyle   = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	UnselectedRowStyle = lipgloss.NewStyle().Foreground(Neutral)
	PanelStyle         = lipgloss.NewStyle().Background(PanelBack)
	BarStyle           = lipgloss.NewStyle().Background(BarBack)
	HeaderStyle        = lipgloss.NewStyle().Foreground(HeaderAccent).Bold(true)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
)
