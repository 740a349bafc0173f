package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// KeybindingSectionConfig defines keybindings for a specific section (navigation, actions, etc.)
// Keys are action names (e.g., "up", "down", "quit"), values are lists of key combinations.
type KeybindingSectionConfig map[string][]string

// KeybindingsConfig defines the structure for custom keybindings.
type KeybindingsConfig struct {
	Preset     string                  `yaml:"preset,omitempty" toml:"preset,omitempty" json:"preset,omitempty" jsonschema:"enum=arrows,enum=vim,description=Base keymap the overrides apply to (default: arrows)"`
	Navigation KeybindingSectionConfig `yaml:"navigation,omitempty" toml:"navigation,omitempty" json:"navigation,omitempty" jsonschema:"description=Navigation keybindings (up, down, left, right)"`
	Actions    KeybindingSectionConfig `yaml:"actions,omitempty" toml:"actions,omitempty" json:"actions,omitempty" jsonschema:"description=Action keybindings (confirm)"`
	System     KeybindingSectionConfig `yaml:"system,omitempty" toml:"system,omitempty" json:"system,omitempty" jsonschema:"description=System keybindings (quit, help)"`
}

// Merged flattens all sections into one override map. Later sections win
// when the same action appears twice.
func (k KeybindingsConfig) Merged() KeybindingSectionConfig {
	out := KeybindingSectionConfig{}
	for _, section := range []KeybindingSectionConfig{k.Navigation, k.Actions, k.System} {
		for action, keys := range section {
			out[action] = keys
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// GridConfig controls how items are laid out and navigated.
type GridConfig struct {
	PerRow             int                    `yaml:"per_row,omitempty" toml:"per_row,omitempty" json:"per_row,omitempty" jsonschema:"minimum=0,description=Cells per row; 0 sizes rows from the terminal width"`
	RequiredRows       int                    `yaml:"required_rows,omitempty" toml:"required_rows,omitempty" json:"required_rows,omitempty" jsonschema:"minimum=0,description=Minimum number of rows; missing cells are padded with blank cells"`
	StartIndex         int                    `yaml:"start_index,omitempty" toml:"start_index,omitempty" json:"start_index,omitempty" jsonschema:"description=First index stamped on blank cells"`
	IndexField         string                 `yaml:"index_field,omitempty" toml:"index_field,omitempty" json:"index_field,omitempty" jsonschema:"description=Record field that receives the blank cell index (default: id)"`
	LabelField         string                 `yaml:"label_field,omitempty" toml:"label_field,omitempty" json:"label_field,omitempty" jsonschema:"description=Record field rendered as the cell label (default: label)"`
	BlankTemplate      map[string]interface{} `yaml:"blank_template,omitempty" toml:"blank_template,omitempty" json:"blank_template,omitempty" jsonschema:"description=Fields copied into every blank cell"`
	KeepOverflowColumn bool                   `yaml:"keep_overflow_column,omitempty" toml:"keep_overflow_column,omitempty" json:"keep_overflow_column,omitempty" jsonschema:"description=Leave the column past the end of a shorter row after up/down instead of clamping it"`
	CellWidth          int                    `yaml:"cell_width,omitempty" toml:"cell_width,omitempty" json:"cell_width,omitempty" jsonschema:"minimum=0,description=Rendered cell width in columns (default: 14)"`
	ScrollBehavior     string                 `yaml:"scroll_behavior,omitempty" toml:"scroll_behavior,omitempty" json:"scroll_behavior,omitempty" jsonschema:"enum=smooth,enum=instant,description=How the view scrolls to a newly focused cell"`
}

// AutoColumns reports whether the row width comes from the terminal.
func (g GridConfig) AutoColumns() bool {
	return g.PerRow == 0
}

// Config represents the gridnav.yml configuration
type Config struct {
	Version     string            `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. 1.0)"`
	Theme       string            `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme (kanagawa, gruvbox, terminal)"`
	Grid        GridConfig        `yaml:"grid,omitempty" toml:"grid,omitempty" json:"grid" jsonschema:"description=Grid layout and navigation"`
	Keybindings KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings" jsonschema:"description=Custom keybindings"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

const (
	DefaultVersion        = "1.0"
	DefaultIndexField     = "id"
	DefaultLabelField     = "label"
	DefaultCellWidth      = 14
	DefaultScrollBehavior = "smooth"
)

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Grid.IndexField == "" {
		c.Grid.IndexField = DefaultIndexField
	}
	if c.Grid.LabelField == "" {
		c.Grid.LabelField = DefaultLabelField
	}
	if c.Grid.CellWidth == 0 {
		c.Grid.CellWidth = DefaultCellWidth
	}
	if c.Grid.ScrollBehavior == "" {
		c.Grid.ScrollBehavior = DefaultScrollBehavior
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded gridnav.yml into the provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct, honouring `yaml` tags.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
