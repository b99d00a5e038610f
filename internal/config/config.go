package config

type Config struct {
	Appearance AppearanceConfig `yaml:"appearance"`
	Behavior   BehaviorConfig   `yaml:"behavior"`
}

type AppearanceConfig struct {
	SidePanelWidth  int    `yaml:"side_panel_width"`
	RowHeight       int    `yaml:"row_height"`
	ShowsHeader     *bool  `yaml:"shows_header_region"`
	HeaderSeparated *bool  `yaml:"header_separated"`
	PanelBackground string `yaml:"panel_background"`
	AccentTint      string `yaml:"accent_tint"`
	TopInset        int    `yaml:"top_inset"`
}

type BehaviorConfig struct {
	// Presentation forces a selector regardless of terminal size:
	// "auto" (policy decides), "panel", or "bar".
	Presentation string `yaml:"presentation"`
	Mouse        *bool  `yaml:"mouse"`
	// WatchConfig reloads appearance settings when the config file
	// changes on disk.
	WatchConfig *bool `yaml:"watch_config"`
}
