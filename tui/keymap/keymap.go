// Package keymap holds the keybindings shared by gridnav components and the
// logic that applies user overrides from gridnav.yml.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/gridnav/config"
	"github.com/grovetools/gridnav/logging"
)

// Base contains the standard grid keybindings. The four directional bindings
// are the ones translated into arrow key codes for the navigator.
type Base struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Core actions
	Confirm key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// Preset names accepted by Load.
const (
	PresetArrows = "arrows"
	PresetVim    = "vim"
)

// DefaultArrows returns the arrow-key keymap.
func DefaultArrows() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultVim returns the arrow keymap with hjkl added to the directions.
func DefaultVim() Base {
	b := DefaultArrows()
	b.Up = key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	)
	b.Down = key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	)
	b.Left = key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	)
	b.Right = key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	)
	return b
}

// ForPreset returns the keymap for a preset name. Unknown names fall back
// to the arrow preset.
func ForPreset(preset string) Base {
	if preset == PresetVim {
		return DefaultVim()
	}
	return DefaultArrows()
}

// Load creates a Base keymap from the configured preset and applies the
// keybinding overrides found in cfg.
func Load(cfg *config.Config) Base {
	if cfg == nil {
		return DefaultArrows()
	}

	base := ForPreset(cfg.Keybindings.Preset)
	if unknown := ApplyOverrides(&base, cfg.Keybindings.Merged()); len(unknown) > 0 {
		logging.NewLogger("keymap").WithField("actions", unknown).Warn("Ignoring keybindings for unknown actions")
	}
	return base
}

// ShortHelp returns the bindings shown in the one-line help.
func (b Base) ShortHelp() []key.Binding {
	return []key.Binding{b.Up, b.Down, b.Left, b.Right, b.Help, b.Quit}
}

// FullHelp returns the bindings shown in the expanded help.
func (b Base) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.Up, b.Down, b.Left, b.Right},
		{b.Confirm, b.Refresh, b.Help, b.Quit},
	}
}
