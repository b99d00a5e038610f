package styles

import "github.com/charmbracelet/lipgloss"

// Semantic colors — AdaptiveColor{Light, Dark}
var (
	Accent       = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	Neutral      = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextPrimary  = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextDim      = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}
	PanelBack    = lipgloss.AdaptiveColor{Light: "#f0f0f5", Dark: "#1f2335"}
	BarBack      = lipgloss.AdaptiveColor{Light: "#e8e8ee", Dark: "#24283b"}
	PanelBorder  = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	HeaderAccent = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#bb9af7"}
)
