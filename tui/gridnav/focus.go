package gridnav

// ScrollBehavior selects between an animated and an immediate scroll.
type ScrollBehavior string

const (
	ScrollSmooth  ScrollBehavior = "smooth"
	ScrollInstant ScrollBehavior = "instant"
)

// ScrollAlign positions the target inside the visible area along one axis.
type ScrollAlign string

const (
	AlignStart   ScrollAlign = "start"
	AlignCenter  ScrollAlign = "center"
	AlignEnd     ScrollAlign = "end"
	AlignNearest ScrollAlign = "nearest"
)

// ScrollOptions mirrors the options accepted by scrollIntoView.
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollAlign
	Inline   ScrollAlign
}

// FocusScroll is the scroll applied when a cell receives focus: animate the
// cell to the vertical center and scroll sideways only as far as needed.
var FocusScroll = ScrollOptions{
	Behavior: ScrollSmooth,
	Block:    AlignCenter,
	Inline:   AlignNearest,
}

const (
	// TabIndexAttr is the attribute consulted before moving focus.
	TabIndexAttr = "tabindex"
	// NotFocusable is the tabindex value that keeps an element out of the
	// tab sequence and away from programmatic focus.
	NotFocusable = "-1"
	// FocusClass is the class toggled by SetFocusMarker.
	FocusClass = "focus"
)

// Element is a focusable cell handle owned by the rendering layer.
type Element interface {
	// Attribute returns the named attribute and whether it is set.
	Attribute(name string) (string, bool)
	// Focus moves input focus to the element.
	Focus()
	// ScrollIntoView scrolls the element's container so it becomes visible.
	ScrollIntoView(opts ScrollOptions)
	// ToggleClass adds class when on is true and removes it otherwise.
	ToggleClass(class string, on bool)
}

// elementAt returns the element at index, or nil when there is none.
func elementAt(index int, elements []Element) Element {
	if index < 0 || index >= len(elements) {
		return nil
	}
	return elements[index]
}

// Focusable reports whether el may receive programmatic focus.
func Focusable(el Element) bool {
	if el == nil {
		return false
	}
	v, ok := el.Attribute(TabIndexAttr)
	return !ok || v != NotFocusable
}

// FocusCell gives input focus to elements[index] and scrolls it to the center
// of the view. Missing elements and elements with tabindex -1 are skipped.
func FocusCell(index int, elements []Element) {
	cell := elementAt(index, elements)
	if !Focusable(cell) {
		return
	}

	cell.Focus()
	cell.ScrollIntoView(FocusScroll)
}

// SetFocusMarker sets the focus class on elements[index] and clears it from
// every other element. An out-of-range index clears all of them.
func SetFocusMarker(index int, elements []Element) {
	for i, el := range elements {
		if el == nil {
			continue
		}
		el.ToggleClass(FocusClass, i == index)
	}
}
