package table

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/gridnav/tui/gridnav"
	"github.com/grovetools/gridnav/tui/theme"
)

// Options provides additional configuration for the table
type Options struct {
	ShowRowNumbers bool
	Bordered       bool
	HeaderStyle    lipgloss.Style
	RowStyle       lipgloss.Style
	AlternateRows  bool
	Theme          *theme.Theme
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		Bordered:      true,
		HeaderStyle:   theme.DefaultTheme.TableHeader,
		RowStyle:      theme.DefaultTheme.TableRow,
		AlternateRows: true,
		Theme:         theme.DefaultTheme,
	}
}

// Builder provides a fluent interface for creating styled tables
type Builder struct {
	table   *ltable.Table
	options Options
}

// NewBuilder creates a new table builder
func NewBuilder() *Builder {
	return &Builder{
		table:   ltable.New(),
		options: DefaultOptions(),
	}
}

// WithTheme sets the theme
func (b *Builder) WithTheme(t *theme.Theme) *Builder {
	b.options.Theme = t
	b.options.HeaderStyle = t.TableHeader
	b.options.RowStyle = t.TableRow
	return b
}

// WithBorder enables or disables the border
func (b *Builder) WithBorder(bordered bool) *Builder {
	b.options.Bordered = bordered
	return b
}

// WithRowNumbers mutes the first column, which holds row numbers.
func (b *Builder) WithRowNumbers(show bool) *Builder {
	b.options.ShowRowNumbers = show
	return b
}

// WithAlternateRows enables or disables alternating row colors
func (b *Builder) WithAlternateRows(alternate bool) *Builder {
	b.options.AlternateRows = alternate
	return b
}

// WithHeaders sets the table headers
func (b *Builder) WithHeaders(headers ...string) *Builder {
	b.table = b.table.Headers(headers...)
	return b
}

// WithRows sets the table rows
func (b *Builder) WithRows(rows ...[]string) *Builder {
	for _, row := range rows {
		b.table = b.table.Row(row...)
	}
	return b
}

// Build creates the styled table
func (b *Builder) Build() *ltable.Table {
	t := b.options.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	if b.options.Bordered {
		b.table = b.table.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(t.TableBorder)
	} else {
		b.table = b.table.Border(lipgloss.HiddenBorder())
	}

	b.table = b.table.StyleFunc(func(row, col int) lipgloss.Style {
		if row == ltable.HeaderRow {
			return b.options.HeaderStyle
		}

		style := b.options.RowStyle
		if b.options.AlternateRows && row%2 == 1 {
			style = style.Background(t.Colors.SubtleBackground)
		}
		if b.options.ShowRowNumbers && col == 0 {
			style = style.Foreground(t.Colors.MutedText)
		}
		return style
	})

	return b.table
}

// RenderOptions controls how Render draws a grid. The zero value uses the
// default theme with a border.
type RenderOptions struct {
	Theme      *theme.Theme
	Borderless bool
}

// Render draws a built grid as a table: one table row per grid row, a
// leading row number column, and column numbers as headers. The cell at
// the linear index marked is bracketed and highlighted; pass -1 to mark
// nothing. Blank pad cells show as a dot.
func Render(grid [][]gridnav.Record, labelField string, marked int, perRow int, opts RenderOptions) string {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	headers := make([]string, 0, perRow+1)
	headers = append(headers, "")
	for c := 0; c < perRow; c++ {
		headers = append(headers, strconv.Itoa(c))
	}

	rows := make([][]string, 0, len(grid))
	for r, row := range grid {
		cells := make([]string, 0, perRow+1)
		cells = append(cells, strconv.Itoa(r))
		for c, rec := range row {
			text := cellText(rec, labelField)
			if gridnav.LinearIndex(r, c, perRow) == marked {
				text = t.CellMarked.Render(theme.GlyphFocusLeft + text + theme.GlyphFocusRight)
			} else if rec.IsBlank() {
				text = t.CellBlank.Render(text)
			}
			cells = append(cells, text)
		}
		// short last row
		for len(cells) < perRow+1 {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}

	return NewBuilder().
		WithTheme(t).
		WithBorder(!opts.Borderless).
		WithHeaders(headers...).
		WithRows(rows...).
		WithRowNumbers(true).
		WithAlternateRows(false).
		Build().
		String()
}

func cellText(rec gridnav.Record, labelField string) string {
	if rec.IsBlank() {
		return theme.GlyphBlank
	}
	if v, ok := rec[labelField]; ok && v != nil {
		return fmt.Sprint(v)
	}
	if v, ok := rec[gridnav.DefaultIndexField]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return "-"
}
