package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/gridnav/tui/gridnav"
	"github.com/grovetools/gridnav/tui/theme"
)

func TestRender(t *testing.T) {
	items := []gridnav.Record{
		{"id": 1, "label": "alpha"},
		{"id": 2, "label": "beta"},
		{"id": 3},
	}
	grid := gridnav.BuildGrid(items, 2, 2, gridnav.BlankTemplate(nil), "id", 100)

	out := Render(grid, "label", 1, 2, RenderOptions{})

	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, theme.GlyphFocusLeft+"beta"+theme.GlyphFocusRight)
	assert.Contains(t, out, "3", "falls back to the id")
	assert.Contains(t, out, theme.GlyphBlank)
	assert.GreaterOrEqual(t, len(strings.Split(out, "\n")), 5)
}

func TestRender_ShortLastRow(t *testing.T) {
	items := []gridnav.Record{{"label": "a"}, {"label": "b"}, {"label": "c"}}
	grid := gridnav.BuildGrid(items, 2, 0, nil, "id", 0)

	out := Render(grid, "label", -1, 2, RenderOptions{})
	assert.Contains(t, out, "c")
	assert.NotContains(t, out, theme.GlyphFocusLeft)
}

func TestRender_Options(t *testing.T) {
	grid := gridnav.BuildGrid([]gridnav.Record{{"label": "a"}, {"label": "b"}}, 2, 0, nil, "id", 0)

	bordered := Render(grid, "label", -1, 2, RenderOptions{Theme: theme.NewThemeWithName("gruvbox")})
	assert.Contains(t, bordered, "╭", "rounded border by default")

	plain := Render(grid, "label", -1, 2, RenderOptions{Borderless: true})
	assert.NotContains(t, plain, "╭")
	assert.Contains(t, plain, "a")
	assert.Contains(t, plain, "b")
}
