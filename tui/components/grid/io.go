package grid

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// frameInterval paces smooth scrolling, one row per frame.
const frameInterval = 16 * time.Millisecond

// ItemsLoadedMsg replaces the grid's item list.
type ItemsLoadedMsg struct {
	Items []gridnav.Record
	Err   error
}

type scrollFrameMsg time.Time

func scrollFrameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return scrollFrameMsg(t)
	})
}

// RefreshItemsCmd returns a command that uses the model's ItemsLoader to
// fetch the current items.
func (m Model) RefreshItemsCmd() tea.Cmd {
	if m.ItemsLoader == nil {
		return nil
	}
	loader := m.ItemsLoader
	return func() tea.Msg {
		items, err := loader()
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}
