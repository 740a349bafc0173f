package grid

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/gridnav/config"
	"github.com/grovetools/gridnav/tui/gridnav"
	"github.com/grovetools/gridnav/tui/theme"
)

func records(n int) []gridnav.Record {
	out := make([]gridnav.Record, n)
	for i := range out {
		out[i] = gridnav.Record{"id": i, "label": fmt.Sprintf("item-%d", i)}
	}
	return out
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func markedIndexes(m Model) []int {
	var out []int
	for _, c := range m.Cells() {
		if c.HasClass(gridnav.FocusClass) {
			out = append(out, c.Index)
		}
	}
	return out
}

func TestNew_PadsAndFocusesFirstCell(t *testing.T) {
	m := New(records(7), Options{PerRow: 3, RequiredRows: 3, StartIndex: 100})

	require.Len(t, m.Grid(), 3)
	require.Len(t, m.Cells(), 9)
	assert.False(t, m.Cells()[6].Blank())
	assert.True(t, m.Cells()[7].Blank())
	assert.True(t, m.Cells()[8].Blank())
	assert.Equal(t, 100, m.Grid()[2][1]["id"], "blank cells are numbered from StartIndex")
	assert.Equal(t, 101, m.Grid()[2][2]["id"])

	assert.Equal(t, gridnav.Position{}, m.Position())
	assert.Equal(t, 0, m.Surface().Focused)
	assert.Equal(t, []int{0}, markedIndexes(m))
}

func TestMove_ArrowKeys(t *testing.T) {
	m := New(records(7), Options{PerRow: 3})

	m = update(t, m, keyRight, keyRight, keyRight)
	assert.Equal(t, gridnav.Position{Row: 0, Col: 2}, m.Position(), "right stops at the row end")

	m = update(t, m, keyDown)
	assert.Equal(t, gridnav.Position{Row: 1, Col: 2}, m.Position())
	assert.Equal(t, 5, m.Surface().Focused)
	assert.Equal(t, []int{5}, markedIndexes(m))

	m = update(t, m, keyLeft, keyLeft, keyLeft)
	assert.Equal(t, gridnav.Position{Row: 1, Col: 0}, m.Position())

	m = update(t, m, keyUp, keyUp)
	assert.Equal(t, gridnav.Position{Row: 0, Col: 0}, m.Position())
}

func TestMove_ClampsColumnOntoShortRow(t *testing.T) {
	m := New(records(7), Options{PerRow: 3})
	m = update(t, m, keyRight, keyRight, keyDown, keyDown)

	assert.Equal(t, gridnav.Position{Row: 2, Col: 0}, m.Position())
	assert.Equal(t, 6, m.Surface().Focused)
}

func TestMove_KeepOverflowColumn(t *testing.T) {
	m := New(records(7), Options{PerRow: 3, RequiredRows: 3, KeepOverflowColumn: true})
	m = update(t, m, keyRight, keyRight, keyDown, keyDown)

	assert.Equal(t, gridnav.Position{Row: 2, Col: 2}, m.Position())
	assert.Equal(t, 5, m.Surface().Focused, "a blank cell never takes input focus")
	assert.Equal(t, []int{8}, markedIndexes(m), "the marker still follows the position")

	m = update(t, m, keyUp)
	assert.Equal(t, gridnav.Position{Row: 1, Col: 2}, m.Position())
	assert.Equal(t, 5, m.Surface().Focused)
}

func TestSetPosition(t *testing.T) {
	m := New(records(7), Options{PerRow: 3})

	m.SetPosition(gridnav.Position{Row: 1, Col: 1})
	assert.Equal(t, gridnav.Position{Row: 1, Col: 1}, m.Position())
	assert.Equal(t, 4, m.Surface().Focused)
	assert.Equal(t, []int{4}, markedIndexes(m))

	m.SetPosition(gridnav.Position{Row: 9, Col: 9})
	assert.Equal(t, gridnav.Position{Row: 2, Col: 0}, m.Position(), "clamped into the last row")
	assert.Equal(t, 6, m.Surface().Focused)
}

func TestMove_OtherKeysIgnored(t *testing.T) {
	m := New(records(7), Options{PerRow: 3})
	m = update(t, m, keyRight, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, gridnav.Position{Row: 0, Col: 1}, m.Position())
}

func TestMove_EmptyGrid(t *testing.T) {
	m := New(nil, Options{PerRow: 3})
	m = update(t, m, keyDown, keyRight)
	assert.Equal(t, gridnav.Position{}, m.Position())
	assert.Contains(t, m.View(), "No items")
}

func TestConfirm(t *testing.T) {
	t.Run("calls OnSelect", func(t *testing.T) {
		var got gridnav.Record
		m := New(records(4), Options{PerRow: 2})
		m.OnSelect = func(r gridnav.Record) tea.Cmd {
			got = r
			return nil
		}
		m = update(t, m, keyDown, keyRight, keyEnter)
		assert.Equal(t, 3, got["id"])
		assert.Equal(t, 3, m.Selected()["id"])
	})

	t.Run("quits without OnSelect", func(t *testing.T) {
		m := New(records(4), Options{PerRow: 2})
		_, cmd := m.Update(keyEnter)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})

	t.Run("blank cell is not selectable", func(t *testing.T) {
		m := New(records(3), Options{PerRow: 2, RequiredRows: 2, KeepOverflowColumn: true})
		m = update(t, m, keyRight, keyDown)
		_, cmd := m.Update(keyEnter)
		assert.Nil(t, cmd)
	})
}

func TestItemsLoaded(t *testing.T) {
	m := New(records(9), Options{PerRow: 3})
	m = update(t, m, keyDown, keyDown, keyRight, keyRight)
	require.Equal(t, gridnav.Position{Row: 2, Col: 2}, m.Position())

	m = update(t, m, ItemsLoadedMsg{Items: records(4)})
	assert.Equal(t, gridnav.Position{Row: 1, Col: 0}, m.Position())
	assert.Equal(t, 3, m.Surface().Focused)
	assert.Len(t, m.Grid(), 2)

	m = update(t, m, ItemsLoadedMsg{Err: errors.New("boom")})
	assert.EqualError(t, m.Err(), "boom")
	assert.Len(t, m.Grid(), 2, "a failed load keeps the old items")
	assert.Contains(t, m.View(), "boom")
}

func TestItemsLoaded_FocusDroppedWhenPositionLandsOnBlank(t *testing.T) {
	m := New(records(6), Options{PerRow: 3, RequiredRows: 2})
	m = update(t, m, keyDown, keyRight, keyRight)
	require.Equal(t, 5, m.Surface().Focused)

	m = update(t, m, ItemsLoadedMsg{Items: nil})

	assert.Equal(t, gridnav.Position{}, m.Position())
	assert.Equal(t, -1, m.Surface().Focused, "input focus does not survive the rebuild")
	for _, c := range m.Cells() {
		assert.True(t, c.Blank())
		assert.False(t, c.Focused(), "blank pad cell %d holds input focus", c.Index)
	}
	assert.Equal(t, []int{0}, markedIndexes(m), "the marker still sits on the position")
	assert.NotContains(t, m.View(), theme.GlyphCursor)

	m = update(t, m, ItemsLoadedMsg{Items: records(2)})
	assert.Equal(t, 0, m.Surface().Focused, "focus returns once a real cell is at the position")
}

func TestRefreshUsesLoader(t *testing.T) {
	m := New(records(2), Options{PerRow: 2})
	assert.Nil(t, m.RefreshItemsCmd())

	m.ItemsLoader = func() ([]gridnav.Record, error) { return records(5), nil }
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	msg, ok := cmd().(ItemsLoadedMsg)
	require.True(t, ok)
	assert.Len(t, msg.Items, 5)
}

func TestWindowSize_AutoColumns(t *testing.T) {
	m := New(records(10), Options{CellWidth: 10})
	assert.Equal(t, 1, m.PerRow())

	m = update(t, m, keyDown, keyDown, keyDown, keyDown, keyDown)
	require.Equal(t, gridnav.Position{Row: 5, Col: 0}, m.Position())

	m = update(t, m, tea.WindowSizeMsg{Width: 46, Height: 20})
	assert.Equal(t, 4, m.PerRow())
	assert.Equal(t, gridnav.Position{Row: 1, Col: 1}, m.Position(), "the focused item survives a relayout")
	assert.Equal(t, 5, m.Surface().Focused)
}

func TestScroll_Smooth(t *testing.T) {
	m := New(records(30), Options{PerRow: 1})
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 9})
	require.Equal(t, 5, m.Surface().Visible)

	var cmds int
	for i := 0; i < 10; i++ {
		next, cmd := m.Update(keyDown)
		m = next.(Model)
		if cmd != nil {
			cmds++
		}
	}
	assert.Equal(t, 1, cmds, "one frame loop at a time")
	assert.Equal(t, 8, m.Surface().Target, "row 10 centered in five visible rows")
	assert.Equal(t, 0, m.Surface().Offset)

	for i := 0; i < 8; i++ {
		m = update(t, m, scrollFrameMsg{})
	}
	assert.Equal(t, 8, m.Surface().Offset)
	assert.False(t, m.Surface().Animating())

	next, cmd := m.Update(scrollFrameMsg{})
	m = next.(Model)
	assert.Nil(t, cmd)
}

func TestScroll_Instant(t *testing.T) {
	m := New(records(30), Options{PerRow: 1, ScrollBehavior: gridnav.ScrollInstant})
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 9})

	for i := 0; i < 10; i++ {
		m = update(t, m, keyDown)
	}
	assert.Equal(t, 8, m.Surface().Offset)
	assert.False(t, m.Surface().Animating())
}

func TestHelpToggle(t *testing.T) {
	m := New(records(3), Options{PerRow: 3})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Contains(t, m.View(), "Grid Navigation")

	m = update(t, m, keyRight)
	assert.Equal(t, gridnav.Position{}, m.Position(), "help swallows keys")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, keyRight)
	assert.Equal(t, gridnav.Position{Row: 0, Col: 1}, m.Position())
}

func TestCustomKeyHandler(t *testing.T) {
	m := New(records(3), Options{PerRow: 3})
	called := false
	m.CustomKeyHandler = func(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
		if msg.Type == tea.KeyRight {
			called = true
			return m, func() tea.Msg { return nil }
		}
		return m, nil
	}
	m = update(t, m, keyRight)
	assert.True(t, called)
	assert.Equal(t, gridnav.Position{}, m.Position())

	m = update(t, m, keyDown)
	assert.Equal(t, gridnav.Position{}, m.Position())
}

func TestView(t *testing.T) {
	m := New(records(5), Options{PerRow: 3, RequiredRows: 2, Title: "Items"})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	view := m.View()

	assert.Contains(t, view, "Items")
	assert.Contains(t, view, "item-0")
	assert.Contains(t, view, "item-4")
	assert.Contains(t, view, "5 items")
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.PerRow = 4
	cfg.Grid.RequiredRows = 2
	cfg.Grid.BlankTemplate = map[string]interface{}{"label": "-"}
	cfg.Grid.ScrollBehavior = "instant"
	cfg.Keybindings.Preset = "vim"

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, 4, opts.PerRow)
	assert.Equal(t, "id", opts.IndexField)
	assert.Equal(t, gridnav.ScrollInstant, opts.ScrollBehavior)
	assert.Equal(t, []string{"l", "right"}, opts.Keys.Right.Keys())

	m := New(records(1), opts)
	assert.Len(t, m.Grid(), 2)
	assert.Equal(t, "-", m.Grid()[1][0]["label"])
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Equal(t, gridnav.Position{}, m.Position(), "single item grid has nowhere to go")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("abc", 0))
}
