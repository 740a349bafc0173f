package grid

import (
	"github.com/grovetools/gridnav/tui/gridnav"
)

// Surface is the focus and scroll state shared by the cells of one grid.
// Offset is the first visible row; Target is where a smooth scroll is
// heading.
type Surface struct {
	Focused int
	Offset  int
	Target  int
	Visible int
	Rows    int

	// Instant turns every smooth scroll request into a jump.
	Instant bool
}

// NewSurface returns a surface with nothing focused.
func NewSurface() *Surface {
	return &Surface{Focused: -1}
}

func (s *Surface) focus(index int) {
	s.Focused = index
}

// visibleRows is the number of rows on screen. An unsized surface shows
// every row.
func (s *Surface) visibleRows() int {
	if s.Visible <= 0 {
		return max(s.Rows, 1)
	}
	return s.Visible
}

func (s *Surface) maxOffset() int {
	return max(0, s.Rows-s.visibleRows())
}

// targetFor returns the offset that places row according to block.
func (s *Surface) targetFor(row int, block gridnav.ScrollAlign) int {
	visible := s.visibleRows()

	var t int
	switch block {
	case gridnav.AlignStart:
		t = row
	case gridnav.AlignEnd:
		t = row - visible + 1
	case gridnav.AlignCenter:
		t = row - visible/2
	default:
		t = s.Offset
		if row < s.Offset {
			t = row
		} else if row >= s.Offset+visible {
			t = row - visible + 1
		}
	}
	return min(max(t, 0), s.maxOffset())
}

func (s *Surface) scrollToRow(row int, opts gridnav.ScrollOptions) {
	s.Target = s.targetFor(row, opts.Block)
	if opts.Behavior == gridnav.ScrollInstant || s.Instant {
		s.Offset = s.Target
	}
}

// Animating reports whether a smooth scroll is still in progress.
func (s *Surface) Animating() bool {
	return s.Offset != s.Target
}

// Step moves the offset one row toward the target.
func (s *Surface) Step() {
	switch {
	case s.Offset < s.Target:
		s.Offset++
	case s.Offset > s.Target:
		s.Offset--
	}
}

// Resize updates the row counts and keeps both offsets in range.
func (s *Surface) Resize(rows, visible int) {
	s.Rows = rows
	s.Visible = visible
	s.Offset = min(max(s.Offset, 0), s.maxOffset())
	s.Target = min(max(s.Target, 0), s.maxOffset())
}
