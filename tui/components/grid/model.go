package grid

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/gridnav/config"
	"github.com/grovetools/gridnav/logging"
	"github.com/grovetools/gridnav/tui/components/help"
	"github.com/grovetools/gridnav/tui/gridnav"
	"github.com/sirupsen/logrus"
)

// chrome is the number of lines taken by the header and the footer.
const chrome = 4

// Options configures a grid Model.
type Options struct {
	// PerRow is the number of cells per row. Zero sizes rows from the
	// window width and CellWidth.
	PerRow        int
	RequiredRows  int
	StartIndex    int
	IndexField    string
	LabelField    string
	BlankTemplate gridnav.Record

	// KeepOverflowColumn leaves the column untouched after an up/down move
	// onto a shorter row instead of clamping it to the row's last cell.
	KeepOverflowColumn bool

	CellWidth      int
	ScrollBehavior gridnav.ScrollBehavior

	// Width is used for automatic columns until the first WindowSizeMsg.
	Width int
	Title string
	Keys  KeyMap
}

// OptionsFromConfig maps the grid section of cfg onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	g := cfg.Grid
	return Options{
		PerRow:             g.PerRow,
		RequiredRows:       g.RequiredRows,
		StartIndex:         g.StartIndex,
		IndexField:         g.IndexField,
		LabelField:         g.LabelField,
		BlankTemplate:      gridnav.Record(g.BlankTemplate),
		KeepOverflowColumn: g.KeepOverflowColumn,
		CellWidth:          g.CellWidth,
		ScrollBehavior:     gridnav.ScrollBehavior(g.ScrollBehavior),
		Keys:               NewKeyMap(cfg),
	}
}

// Model is an interactive grid of records navigated with the arrow keys.
type Model struct {
	opts    Options
	keys    KeyMap
	items   []gridnav.Record
	grid    [][]gridnav.Record
	cells   []*Cell
	surface *Surface
	pos     gridnav.Position
	perRow  int
	width   int
	height  int
	help    help.Model
	ticking bool
	err     error

	selected gridnav.Record

	// OnSelect is called when a real cell is chosen with Confirm. Without it
	// the model quits and the record is available from Selected.
	OnSelect func(gridnav.Record) tea.Cmd

	// CustomKeyHandler sees every key press first. A non-nil command stops
	// the grid's own handling.
	CustomKeyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd)

	// ItemsLoader is called by the Refresh binding.
	ItemsLoader func() ([]gridnav.Record, error)
}

// New creates a grid for items.
func New(items []gridnav.Record, opts Options) Model {
	if opts.IndexField == "" {
		opts.IndexField = gridnav.DefaultIndexField
	}
	if opts.LabelField == "" {
		opts.LabelField = config.DefaultLabelField
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = config.DefaultCellWidth
	}
	if opts.Keys.Up.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}

	surface := NewSurface()
	surface.Instant = opts.ScrollBehavior == gridnav.ScrollInstant

	h := help.New(opts.Keys)
	h.Title = "Grid Navigation"

	m := Model{
		opts:    opts,
		keys:    opts.Keys,
		surface: surface,
		width:   opts.Width,
		help:    h,
	}
	m.perRow = m.columns()
	m.setItems(items)
	m.applyFocus()
	m.surface.Offset = m.surface.Target
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		if perRow := m.columns(); perRow != m.perRow {
			index := m.currentIndex()
			m.perRow = perRow
			m.rebuild()
			m.pos = m.positionOf(index)
		}
		m.resizeSurface()
		m.applyFocus()
		return m, m.startScroll()

	case ItemsLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			logging.NewLogger("grid").WithError(msg.Err).Warn("Failed to load items")
			return m, nil
		}
		m.err = nil
		m.setItems(msg.Items)
		m.applyFocus()
		return m, m.startScroll()

	case scrollFrameMsg:
		m.surface.Step()
		if m.surface.Animating() {
			return m, scrollFrameCmd()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

		if m.CustomKeyHandler != nil {
			if next, cmd := m.CustomKeyHandler(m, msg); cmd != nil {
				return next, cmd
			}
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			return m.move(gridnav.ArrowUp)
		case key.Matches(msg, m.keys.Down):
			return m.move(gridnav.ArrowDown)
		case key.Matches(msg, m.keys.Left):
			return m.move(gridnav.ArrowLeft)
		case key.Matches(msg, m.keys.Right):
			return m.move(gridnav.ArrowRight)
		case key.Matches(msg, m.keys.Confirm):
			return m.confirm()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.RefreshItemsCmd()
		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// move applies one arrow key press: compute the new position, fix up the
// column if needed, then move focus and the focus marker to the new index.
func (m Model) move(code gridnav.KeyCode) (tea.Model, tea.Cmd) {
	dataSize := len(m.items)
	next := gridnav.ComputeMove(code, m.pos.Row, m.pos.Col, dataSize, m.perRow)

	if !m.opts.KeepOverflowColumn && (code == gridnav.ArrowUp || code == gridnav.ArrowDown) {
		if width := gridnav.RowWidth(next.Row, dataSize, m.perRow); width > 0 && next.Col >= width {
			next.Col = width - 1
		}
	}

	logging.NewLogger("grid").WithFields(logrus.Fields{
		"key":  string(code),
		"from": m.pos,
		"to":   next,
	}).Debug("Move")

	m.pos = next
	m.applyFocus()
	return m, m.startScroll()
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	index := m.currentIndex()
	if index < 0 || index >= len(m.items) {
		return m, nil
	}
	m.selected = m.items[index]
	if m.OnSelect != nil {
		return m, m.OnSelect(m.selected)
	}
	return m, tea.Quit
}

// applyFocus focuses the cell at the current position and moves the focus
// marker onto it.
func (m *Model) applyFocus() {
	index := m.currentIndex()
	elements := m.elements()
	gridnav.FocusCell(index, elements)
	gridnav.SetFocusMarker(index, elements)
}

// startScroll begins the frame loop when a smooth scroll is pending and no
// loop is already running.
func (m *Model) startScroll() tea.Cmd {
	if !m.surface.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return scrollFrameCmd()
}

func (m *Model) setItems(items []gridnav.Record) {
	m.items = items
	m.rebuild()
	m.clampPosition()
}

// rebuild lays the current items out again. The grid is rebuilt whenever the
// item list or the row width changes.
func (m *Model) rebuild() {
	if m.perRow <= 0 {
		m.perRow = 1
	}
	blank := gridnav.BlankTemplate(m.opts.BlankTemplate)
	m.grid = gridnav.BuildGrid(m.items, m.perRow, m.opts.RequiredRows, blank, m.opts.IndexField, m.opts.StartIndex)

	// the old cells are gone and input focus with them
	m.surface.Focused = -1
	m.cells = make([]*Cell, 0, len(m.grid)*m.perRow)
	index := 0
	for _, row := range m.grid {
		for _, rec := range row {
			cell := newCell(rec, index, m.perRow, m.labelFor(rec), m.surface)
			if index >= len(m.items) || rec.IsBlank() {
				cell.SetAttribute(gridnav.TabIndexAttr, gridnav.NotFocusable)
			} else {
				cell.SetAttribute(gridnav.TabIndexAttr, "0")
			}
			m.cells = append(m.cells, cell)
			index++
		}
	}
	m.resizeSurface()
}

func (m *Model) resizeSurface() {
	visible := 0
	if m.height > 0 {
		visible = max(1, m.height-chrome)
	}
	m.surface.Resize(len(m.grid), visible)
}

// clampPosition pulls the position back inside the grid after the items
// changed underneath it.
func (m *Model) clampPosition() {
	dataSize := len(m.items)
	if dataSize == 0 {
		m.pos = gridnav.Position{}
		return
	}
	row := min(max(m.pos.Row, 0), gridnav.MaxRow(dataSize, m.perRow))
	col := min(max(m.pos.Col, 0), gridnav.RowWidth(row, dataSize, m.perRow)-1)
	m.pos = gridnav.Position{Row: row, Col: col}
}

func (m Model) positionOf(index int) gridnav.Position {
	if index < 0 || len(m.items) == 0 {
		return gridnav.Position{}
	}
	index = min(index, len(m.items)-1)
	return gridnav.Position{Row: index / m.perRow, Col: index % m.perRow}
}

func (m Model) elements() []gridnav.Element {
	out := make([]gridnav.Element, len(m.cells))
	for i, c := range m.cells {
		out[i] = c
	}
	return out
}

func (m Model) currentIndex() int {
	return gridnav.LinearIndex(m.pos.Row, m.pos.Col, m.perRow)
}

// columns returns the row width: the configured value, or as many cells as
// fit in the window when automatic.
func (m Model) columns() int {
	if m.opts.PerRow > 0 {
		return m.opts.PerRow
	}
	if m.width <= 0 {
		return 1
	}
	// each cell takes its width plus a separator; two columns go to the
	// scrollbar
	return max(1, (m.width-2)/(m.opts.CellWidth+1))
}

func (m Model) labelFor(rec gridnav.Record) string {
	if rec.IsBlank() {
		return ""
	}
	if v, ok := rec[m.opts.LabelField]; ok && v != nil {
		return fmt.Sprint(v)
	}
	if v, ok := rec[m.opts.IndexField]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

// Items returns the records currently laid out, without blank pad cells.
func (m Model) Items() []gridnav.Record {
	return m.items
}

// Position returns the current cursor position.
func (m Model) Position() gridnav.Position {
	return m.pos
}

// SetPosition moves the cursor to pos, clamped into the grid, without
// animating the scroll.
func (m *Model) SetPosition(pos gridnav.Position) {
	m.pos = pos
	m.clampPosition()
	m.applyFocus()
	m.surface.Offset = m.surface.Target
}

// PerRow returns the current number of cells per row.
func (m Model) PerRow() int {
	return m.perRow
}

// Grid returns the laid out rows, padding included.
func (m Model) Grid() [][]gridnav.Record {
	return m.grid
}

// Cells returns the rendered cells in linear order.
func (m Model) Cells() []*Cell {
	return m.cells
}

// Surface returns the focus and scroll state.
func (m Model) Surface() *Surface {
	return m.surface
}

// Selected returns the record chosen with Confirm, if any.
func (m Model) Selected() gridnav.Record {
	return m.selected
}

// Err returns the last item loading error.
func (m Model) Err() error {
	return m.err
}
