package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/gridnav/pkg/items"
	"github.com/grovetools/gridnav/tui/components/grid"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// liveModel feeds snapshots from a live item source into a grid.
type liveModel struct {
	grid    grid.Model
	updates <-chan items.Update
	// restore is applied once the first non-empty snapshot arrives.
	restore *gridnav.Position
}

func newLiveModel(g grid.Model, updates <-chan items.Update) liveModel {
	return liveModel{grid: g, updates: updates}
}

// restorePosition moves the cursor to pos, or defers the move until items
// arrive when the grid starts empty.
func (m liveModel) restorePosition(pos gridnav.Position) liveModel {
	if len(m.grid.Items()) == 0 && m.updates != nil {
		m.restore = &pos
		return m
	}
	m.grid.SetPosition(pos)
	return m
}

func (m liveModel) Init() tea.Cmd {
	return tea.Batch(m.grid.Init(), items.WatchCmd(m.updates))
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if u, ok := msg.(items.UpdateMsg); ok {
		next, cmd := m.grid.Update(grid.ItemsLoadedMsg{Items: u.Items, Err: u.Err})
		m.grid = next.(grid.Model)
		if m.restore != nil && len(u.Items) > 0 {
			m.grid.SetPosition(*m.restore)
			m.restore = nil
		}
		return m, tea.Batch(cmd, items.WatchCmd(m.updates))
	}

	next, cmd := m.grid.Update(msg)
	m.grid = next.(grid.Model)
	return m, cmd
}

func (m liveModel) View() string {
	return m.grid.View()
}
