package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			SidePanelWidth:  24,
			RowHeight:       3,
			ShowsHeader:     boolPtr(false),
			HeaderSeparated: boolPtr(false),
			TopInset:        0,
		},
		Behavior: BehaviorConfig{
			Presentation: "auto",
			Mouse:        boolPtr(true),
			WatchConfig:  boolPtr(false),
		},
	}
}
