package grid

import (
	"github.com/grovetools/gridnav/config"
	"github.com/grovetools/gridnav/tui/keymap"
)

// KeyMap defines the keybindings for the grid.
type KeyMap struct {
	keymap.Base
}

// Bindings exposes the shared bindings to the help component.
func (k KeyMap) Bindings() keymap.Base {
	return k.Base
}

// DefaultKeyMap returns the arrow keymap.
func DefaultKeyMap() KeyMap {
	return KeyMap{Base: keymap.DefaultArrows()}
}

// NewKeyMap builds the grid keymap from the configured preset and
// overrides.
func NewKeyMap(cfg *config.Config) KeyMap {
	return KeyMap{Base: keymap.Load(cfg)}
}
