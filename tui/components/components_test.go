package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	plain := RenderHeader("items.json")
	assert.Contains(t, plain, "items.json")
	assert.Equal(t, 1, lipgloss.Height(plain))

	withSub := RenderHeader("items.json", "7 items")
	assert.Contains(t, withSub, "7 items")
	assert.False(t, strings.Contains(withSub, "\n"), "header stays on one line")

	assert.Equal(t, plain, RenderHeader("items.json", ""))
}
