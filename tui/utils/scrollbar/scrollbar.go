package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/gridnav/tui/theme"
)

// Generate creates scrollbar characters for a window of visible lines over
// total lines, scrolled down by offset. One string is returned per line of
// height.
func Generate(total, visible, offset, height int) []string {
	if height <= 0 {
		return []string{}
	}

	style := theme.DefaultTheme.Scrollbar
	bar := make([]string, height)

	if total <= 0 {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	// everything fits, no thumb
	if total <= visible {
		for i := range bar {
			bar[i] = style.Render(theme.GlyphTrack)
		}
		return bar
	}

	thumbSize := max(1, (height*visible)/total)
	maxThumbStart := height - thumbSize

	maxOffset := total - visible
	offset = min(max(offset, 0), maxOffset)
	thumbStart := int(float64(maxThumbStart)*float64(offset)/float64(maxOffset) + 0.5)
	thumbStart = min(max(thumbStart, 0), maxThumbStart)

	for i := range bar {
		if i >= thumbStart && i < thumbStart+thumbSize {
			bar[i] = style.Render(theme.GlyphThumb)
		} else {
			bar[i] = style.Render(theme.GlyphTrack)
		}
	}

	return bar
}

// FromViewport creates scrollbar characters based on viewport position.
func FromViewport(vp *viewport.Model, height int) []string {
	return Generate(vp.TotalLineCount(), vp.Height, vp.YOffset, height)
}

// Overlay appends a scrollbar column to each line of content.
func Overlay(content string, total, visible, offset int) string {
	lines := strings.Split(content, "\n")
	bar := Generate(total, visible, offset, len(lines))

	for i := range lines {
		lines[i] += " " + bar[i]
	}
	return strings.Join(lines, "\n")
}
