package config

import (
	"fmt"

	"github.com/grovetools/gridnav/errors"
)

var validThemes = map[string]bool{
	"":         true,
	"kanagawa": true,
	"gruvbox":  true,
	"terminal": true,
}

// Validate checks if the configuration is valid. It expects defaults to have
// been applied.
func (c *Config) Validate() error {
	if err := validateGrid(&c.Grid); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid grid configuration")
	}

	if !validThemes[c.Theme] {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown theme %q", c.Theme)).
			WithDetail("theme", c.Theme)
	}

	switch c.Keybindings.Preset {
	case "", "arrows", "vim":
	default:
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown keybinding preset %q", c.Keybindings.Preset)).
			WithDetail("preset", c.Keybindings.Preset)
	}

	for action, keys := range c.Keybindings.Merged() {
		if len(keys) == 0 {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("keybinding %q has no keys", action)).
				WithDetail("action", action)
		}
	}

	return nil
}

func validateGrid(g *GridConfig) error {
	if g.PerRow < 0 {
		return fmt.Errorf("per_row must be >= 0, got %d", g.PerRow)
	}
	if g.RequiredRows < 0 {
		return fmt.Errorf("required_rows must be >= 0, got %d", g.RequiredRows)
	}
	if g.IndexField == "" {
		return fmt.Errorf("index_field cannot be empty")
	}
	if g.CellWidth < 3 {
		return fmt.Errorf("cell_width must be at least 3, got %d", g.CellWidth)
	}
	switch g.ScrollBehavior {
	case "smooth", "instant":
	default:
		return fmt.Errorf("scroll_behavior must be smooth or instant, got %q", g.ScrollBehavior)
	}
	return nil
}
