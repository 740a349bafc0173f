package items

import (
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateMsg carries a live source snapshot into a bubbletea program.
type UpdateMsg Update

// WatchCmd waits for the next snapshot on updates. The caller re-issues it
// after handling each UpdateMsg. A closed channel yields nil.
func WatchCmd(updates <-chan Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return UpdateMsg(u)
	}
}
