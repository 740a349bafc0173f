package grid

import (
	"sort"

	"github.com/grovetools/gridnav/tui/gridnav"
)

// Cell is one rendered grid cell. It satisfies gridnav.Element so the
// navigator's focus helpers can drive it the same way they drive any
// focusable surface.
type Cell struct {
	Record gridnav.Record
	Label  string
	Index  int
	Row    int
	Col    int

	attrs   map[string]string
	classes map[string]bool
	surface *Surface
}

var _ gridnav.Element = (*Cell)(nil)

func newCell(rec gridnav.Record, index, perRow int, label string, s *Surface) *Cell {
	return &Cell{
		Record:  rec,
		Label:   label,
		Index:   index,
		Row:     index / perRow,
		Col:     index % perRow,
		attrs:   map[string]string{},
		classes: map[string]bool{},
		surface: s,
	}
}

// Attribute returns the named attribute.
func (c *Cell) Attribute(name string) (string, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

// SetAttribute sets the named attribute.
func (c *Cell) SetAttribute(name, value string) {
	c.attrs[name] = value
}

// Focus gives this cell the surface's input focus.
func (c *Cell) Focus() {
	if c.surface != nil {
		c.surface.focus(c.Index)
	}
}

// ScrollIntoView asks the surface to bring this cell's row on screen.
func (c *Cell) ScrollIntoView(opts gridnav.ScrollOptions) {
	if c.surface != nil {
		c.surface.scrollToRow(c.Row, opts)
	}
}

// ToggleClass adds the class when on is true and removes it otherwise.
func (c *Cell) ToggleClass(class string, on bool) {
	if on {
		c.classes[class] = true
		return
	}
	delete(c.classes, class)
}

// HasClass reports whether the class is set.
func (c *Cell) HasClass(class string) bool {
	return c.classes[class]
}

// Classes returns the set classes in sorted order.
func (c *Cell) Classes() []string {
	out := make([]string, 0, len(c.classes))
	for class := range c.classes {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// Blank reports whether the cell is padding.
func (c *Cell) Blank() bool {
	return !gridnav.Focusable(c)
}

// Focused reports whether the cell holds the surface's input focus.
func (c *Cell) Focused() bool {
	return c.surface != nil && c.surface.Focused == c.Index
}
