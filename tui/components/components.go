package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/gridnav/tui/theme"
)

// RenderHeader renders a one-line header: the title followed by an optional
// muted subtitle.
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Header.UnsetMarginBottom().Render(title)
	if len(subtitle) > 0 && subtitle[0] != "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, header, " ", t.Muted.Render(subtitle[0]))
	}
	return header
}
