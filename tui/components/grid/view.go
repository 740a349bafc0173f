package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/gridnav/tui/components"
	"github.com/grovetools/gridnav/tui/gridnav"
	"github.com/grovetools/gridnav/tui/theme"
	"github.com/grovetools/gridnav/tui/utils/scrollbar"
)

// View renders the grid.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	t := theme.DefaultTheme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(t.Error.Render("Error: " + m.err.Error()))
	case len(m.items) == 0 && len(m.grid) == 0:
		b.WriteString(t.Muted.Render("No items"))
	default:
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.opts.Title
	if title == "" {
		title = "gridnav"
	}
	summary := fmt.Sprintf("%d items • %d per row • row %d/%d col %d",
		len(m.items), m.perRow, m.pos.Row+1, max(len(m.grid), 1), m.pos.Col+1)
	return components.RenderHeader(title, summary)
}

// renderRows renders the visible window of rows with a scrollbar column.
func (m Model) renderRows() string {
	visible := m.surface.visibleRows()
	start := m.surface.Offset
	end := min(start+visible, len(m.grid))

	lines := make([]string, 0, visible)
	for r := start; r < end; r++ {
		cells := make([]string, 0, m.perRow)
		for c := 0; c < len(m.grid[r]); c++ {
			cells = append(cells, m.renderCell(m.cells[r*m.perRow+c]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return scrollbar.Overlay(strings.Join(lines, "\n"), len(m.grid), visible, start)
}

func (m Model) renderCell(c *Cell) string {
	t := theme.DefaultTheme
	width := m.opts.CellWidth

	prefix := " "
	if c.Focused() {
		prefix = t.Cursor.Render(theme.GlyphCursor)
	}

	label := truncate(c.Label, width-2)
	style := t.Cell
	switch {
	case c.HasClass(gridnav.FocusClass) && c.Blank():
		label = theme.GlyphFocusLeft + theme.GlyphBlank + theme.GlyphFocusRight
		style = t.CellMarked
	case c.HasClass(gridnav.FocusClass):
		style = t.CellMarked
	case c.Blank():
		label = theme.GlyphBlank
		style = t.CellBlank
	}
	if c.Focused() {
		style = style.Inherit(t.CellFocused)
	}

	return lipgloss.NewStyle().Width(width).Render(prefix + style.Render(label))
}

// truncate shortens s to at most width cells, ending with an ellipsis when
// cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + theme.GlyphEllipsis
}
