package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/gridnav/tui/gridnav"
)

func TestSurface_TargetFor(t *testing.T) {
	s := NewSurface()
	s.Resize(20, 5)
	s.Offset = 4

	tests := []struct {
		name  string
		row   int
		block gridnav.ScrollAlign
		want  int
	}{
		{"start", 10, gridnav.AlignStart, 10},
		{"end", 10, gridnav.AlignEnd, 6},
		{"center", 10, gridnav.AlignCenter, 8},
		{"center clamps at top", 1, gridnav.AlignCenter, 0},
		{"center clamps at bottom", 19, gridnav.AlignCenter, 15},
		{"nearest visible stays", 6, gridnav.AlignNearest, 4},
		{"nearest above", 2, gridnav.AlignNearest, 2},
		{"nearest below", 12, gridnav.AlignNearest, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.targetFor(tt.row, tt.block))
		})
	}
}

func TestSurface_Unsized(t *testing.T) {
	s := NewSurface()
	s.Resize(10, 0)
	assert.Equal(t, 10, s.visibleRows())
	assert.Equal(t, 0, s.targetFor(9, gridnav.AlignCenter))
}

func TestSurface_StepAndInstant(t *testing.T) {
	s := NewSurface()
	s.Resize(20, 4)

	s.scrollToRow(10, gridnav.ScrollOptions{Behavior: gridnav.ScrollSmooth, Block: gridnav.AlignStart})
	assert.Equal(t, 0, s.Offset)
	assert.True(t, s.Animating())
	s.Step()
	assert.Equal(t, 1, s.Offset)

	s.scrollToRow(0, gridnav.ScrollOptions{Behavior: gridnav.ScrollInstant, Block: gridnav.AlignStart})
	assert.Equal(t, 0, s.Offset)
	assert.False(t, s.Animating())

	s.Instant = true
	s.scrollToRow(16, gridnav.FocusScroll)
	assert.Equal(t, 14, s.Offset)
}

func TestSurface_ResizeClamps(t *testing.T) {
	s := NewSurface()
	s.Resize(20, 4)
	s.Offset, s.Target = 16, 16
	s.Resize(10, 4)
	assert.Equal(t, 6, s.Offset)
	assert.Equal(t, 6, s.Target)
}
