package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/gridnav/config"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"FirstCell", "first_cell"},
		{"ToggleBlanks", "toggle_blanks"},
		{"HTTPServer", "http_server"},
		{"OpenURL", "open_url"},
		{"Up", "up"},
		{"Confirm", "confirm"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := camelToSnake(tt.input)
			if result != tt.expected {
				t.Errorf("camelToSnake(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

type testKeyMap struct {
	Base
	FirstCell    key.Binding
	ToggleBlanks key.Binding
	unexported   key.Binding
	NotABinding  string
}

func newTestKeyMap() testKeyMap {
	return testKeyMap{
		Base: DefaultArrows(),
		FirstCell: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first cell"),
		),
		ToggleBlanks: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle blanks"),
		),
		NotABinding: "not a binding",
	}
}

func TestApplyOverrides(t *testing.T) {
	km := newTestKeyMap()

	unknown := ApplyOverrides(&km, config.KeybindingSectionConfig{
		"first_cell":    []string{"home", "g"},
		"unexported":    []string{"x"},
		"not_a_binding": []string{"n"},
	})

	if len(unknown) != 2 || unknown[0] != "not_a_binding" || unknown[1] != "unexported" {
		t.Errorf("unknown actions = %v, want [not_a_binding unexported]", unknown)
	}

	if keys := km.FirstCell.Keys(); len(keys) != 2 || keys[0] != "home" || keys[1] != "g" {
		t.Errorf("FirstCell keys = %v, want [home g]", keys)
	}
	if got := km.FirstCell.Help().Desc; got != "first cell" {
		t.Errorf("FirstCell help desc = %q, want %q", got, "first cell")
	}
	if got := km.FirstCell.Help().Key; got != "home" {
		t.Errorf("FirstCell help key = %q, want %q", got, "home")
	}
	if keys := km.ToggleBlanks.Keys(); len(keys) != 1 || keys[0] != "b" {
		t.Errorf("ToggleBlanks keys = %v, want [b]", keys)
	}
	if keys := km.unexported.Keys(); len(keys) != 0 {
		t.Errorf("unexported keys = %v, want none", keys)
	}
	if km.NotABinding != "not a binding" {
		t.Errorf("NotABinding = %q, want %q", km.NotABinding, "not a binding")
	}
}

func TestApplyOverrides_EmptyKeysIgnored(t *testing.T) {
	km := newTestKeyMap()

	ApplyOverrides(&km, config.KeybindingSectionConfig{"first_cell": {}})

	if keys := km.FirstCell.Keys(); len(keys) != 1 || keys[0] != "g" {
		t.Errorf("FirstCell keys = %v, want [g]", keys)
	}
}

func TestApplyOverrides_NilOverrides(t *testing.T) {
	km := newTestKeyMap()

	ApplyOverrides(&km, nil)

	if keys := km.FirstCell.Keys(); len(keys) != 1 || keys[0] != "g" {
		t.Errorf("FirstCell keys = %v, want [g]", keys)
	}
}

func TestApplyOverrides_NonPointer(t *testing.T) {
	km := newTestKeyMap()

	// passed by value, nothing can change
	ApplyOverrides(km, config.KeybindingSectionConfig{"first_cell": []string{"G"}})

	if keys := km.FirstCell.Keys(); len(keys) != 1 || keys[0] != "g" {
		t.Errorf("FirstCell keys = %v, want [g]", keys)
	}
}

func TestApplyOverrides_EmbeddedStruct(t *testing.T) {
	km := newTestKeyMap()

	ApplyOverrides(&km, config.KeybindingSectionConfig{
		"toggle_blanks": []string{"B"},
		"up":            []string{"w"},
		"quit":          []string{"Q", "x"},
	})

	if keys := km.ToggleBlanks.Keys(); len(keys) != 1 || keys[0] != "B" {
		t.Errorf("ToggleBlanks keys = %v, want [B]", keys)
	}
	if keys := km.Base.Up.Keys(); len(keys) != 1 || keys[0] != "w" {
		t.Errorf("Base.Up keys = %v, want [w]", keys)
	}
	if keys := km.Base.Quit.Keys(); len(keys) != 2 || keys[0] != "Q" || keys[1] != "x" {
		t.Errorf("Base.Quit keys = %v, want [Q x]", keys)
	}

	defaultDown := DefaultArrows().Down.Keys()
	if keys := km.Base.Down.Keys(); len(keys) != len(defaultDown) || keys[0] != defaultDown[0] {
		t.Errorf("Base.Down keys = %v, want %v", keys, defaultDown)
	}
}

func TestApplyOverrides_OuterFieldShadowsEmbedded(t *testing.T) {
	type shadowing struct {
		Base
		Up key.Binding
	}
	km := shadowing{
		Base: DefaultArrows(),
		Up:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "outer up")),
	}

	ApplyOverrides(&km, config.KeybindingSectionConfig{"up": []string{"i"}})

	if keys := km.Up.Keys(); len(keys) != 1 || keys[0] != "i" {
		t.Errorf("outer Up keys = %v, want [i]", keys)
	}
	if keys := km.Base.Up.Keys(); len(keys) != 1 || keys[0] != "up" {
		t.Errorf("embedded Up keys = %v, want [up]", keys)
	}
}
