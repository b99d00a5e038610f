package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run — errors are collected,
// not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	switch cfg.Behavior.Presentation {
	case "auto", "panel", "bar":
	default:
		errs = append(errs, fmt.Sprintf("behavior.presentation %q must be \"auto\", \"panel\", or \"bar\"", cfg.Behavior.Presentation))
	}

	if cfg.Appearance.SidePanelWidth <= 0 {
		errs = append(errs, "appearance.side_panel_width must be positive")
	}
	if cfg.Appearance.RowHeight <= 0 {
		errs = append(errs, "appearance.row_height must be positive")
	}
	if cfg.Appearance.TopInset < 0 {
		errs = append(errs, "appearance.top_inset must not be negative")
	}
	for _, c := range []struct{ name, val string }{
		{"appearance.panel_background", cfg.Appearance.PanelBackground},
		{"appearance.accent_tint", cfg.Appearance.AccentTint},
	} {
		if c.val != "" && !validColor(c.val) {
			errs = append(errs, fmt.Sprintf("%s %q must be a hex color like \"#7aa2f7\" or an ANSI color number", c.name, c.val))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func validColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return false
		}
		for _, r := range s[1:] {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return false
			}
		}
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
