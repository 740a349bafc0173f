package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/gridnav/config"
)

const defaultThemeName = "kanagawa"

// Glyphs used by the grid renderer.
const (
	GlyphCursor     = "▶"
	GlyphBlank      = "·"
	GlyphThumb      = "█"
	GlyphTrack      = "│"
	GlyphEllipsis   = "…"
	GlyphFocusLeft  = "["
	GlyphFocusRight = "]"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles used by gridnav components.
type Theme struct {
	Name   string
	Colors Colors

	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	Highlight lipgloss.Style
	Accent    lipgloss.Style

	// Grid cells
	Cell        lipgloss.Style // regular navigable cell
	CellBlank   lipgloss.Style // padding cell, never focusable
	CellMarked  lipgloss.Style // cell carrying the focus marker
	CellFocused lipgloss.Style // cell holding input focus
	Cursor      lipgloss.Style

	// Layout table
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableBorder lipgloss.Style
	Scrollbar   lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

// DefaultTheme is the theme selected by GRIDNAV_THEME or the `theme` config key.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return NewThemeWithName(getThemeName())
}

// NewThemeWithName constructs a theme from a specific palette name. Unknown
// names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	key := normalizeThemeName(name)
	builder, ok := themeRegistry[key]
	if !ok {
		key = defaultThemeName
		builder = themeRegistry[key]
	}
	return newThemeFromColors(builder(), key)
}

// Names lists the registered palettes.
func Names() []string {
	return []string{"kanagawa", "gruvbox", "terminal"}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Faint(true),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Cell: lipgloss.NewStyle().
			Foreground(colors.LightText),
		CellBlank: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Faint(true),
		CellMarked: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText).
			Bold(true),
		CellFocused: lipgloss.NewStyle().
			Underline(true),
		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		TableRow: lipgloss.NewStyle().
			Padding(0, 1),
		TableBorder: lipgloss.NewStyle().
			Foreground(colors.Border),
		Scrollbar: lipgloss.NewStyle().
			Foreground(colors.MutedText),
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	// Variants share one palette.
	if i := strings.IndexByte(normalized, '-'); i > 0 {
		normalized = normalized[:i]
	}
	return normalized
}

func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("GRIDNAV_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil {
		return defaultThemeName
	}
	if theme := normalizeThemeName(cfg.Theme); theme != "" {
		return theme
	}
	return defaultThemeName
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: "#4E7C5A", Dark: "#98BB6C"},
		Yellow:             lipgloss.AdaptiveColor{Light: "#A68A64", Dark: "#FF9E3B"},
		Red:                lipgloss.AdaptiveColor{Light: "#C34043", Dark: "#FF5D62"},
		Orange:             lipgloss.AdaptiveColor{Light: "#CC6B4E", Dark: "#FFA066"},
		Cyan:               lipgloss.AdaptiveColor{Light: "#5B8BBE", Dark: "#7E9CD8"},
		Violet:             lipgloss.AdaptiveColor{Light: "#674D7A", Dark: "#957FB8"},
		LightText:          lipgloss.AdaptiveColor{Light: "#2B2F42", Dark: "#DCD7BA"},
		MutedText:          lipgloss.AdaptiveColor{Light: "#6C7086", Dark: "#727169"},
		Border:             lipgloss.AdaptiveColor{Light: "#B5BDC5", Dark: "#363646"},
		SelectedBackground: lipgloss.AdaptiveColor{Light: "#E2E6F3", Dark: "#223249"},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: "#F7F7FB", Dark: "#1F1F28"},
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: "#98971A", Dark: "#B8BB26"},
		Yellow:             lipgloss.AdaptiveColor{Light: "#D79921", Dark: "#FABD2F"},
		Red:                lipgloss.AdaptiveColor{Light: "#CC241D", Dark: "#FB4934"},
		Orange:             lipgloss.AdaptiveColor{Light: "#D65D0E", Dark: "#FE8019"},
		Cyan:               lipgloss.AdaptiveColor{Light: "#458588", Dark: "#83A598"},
		Violet:             lipgloss.AdaptiveColor{Light: "#8F3F71", Dark: "#B16286"},
		LightText:          lipgloss.AdaptiveColor{Light: "#3C3836", Dark: "#EBDBB2"},
		MutedText:          lipgloss.AdaptiveColor{Light: "#928374", Dark: "#BDAE93"},
		Border:             lipgloss.AdaptiveColor{Light: "#D5C4A1", Dark: "#504945"},
		SelectedBackground: lipgloss.AdaptiveColor{Light: "#F2E5BC", Dark: "#32302F"},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: "#FBF1C7", Dark: "#282828"},
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Orange:             lipgloss.Color("208"),
		Cyan:               lipgloss.Color("6"),
		Violet:             lipgloss.Color("5"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("8"),
		SubtleBackground:   lipgloss.Color("0"),
	}
}
