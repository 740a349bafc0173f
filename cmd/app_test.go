package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/gridnav/pkg/items"
	"github.com/grovetools/gridnav/tui/components/grid"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// runCmd executes cmd and any batched commands, returning the non-nil
// messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// nextUpdate runs cmd and returns the single items.UpdateMsg it produced.
func nextUpdate(t *testing.T, cmd tea.Cmd) items.UpdateMsg {
	t.Helper()
	var found []items.UpdateMsg
	for _, msg := range runCmd(cmd) {
		if u, ok := msg.(items.UpdateMsg); ok {
			found = append(found, u)
		}
	}
	require.Len(t, found, 1)
	return found[0]
}

func liveRecords(labels ...string) []gridnav.Record {
	out := make([]gridnav.Record, len(labels))
	for i, l := range labels {
		out[i] = gridnav.Record{"id": i, "label": l}
	}
	return out
}

func TestLiveModel_FeedsUpdatesIntoGrid(t *testing.T) {
	updates := make(chan items.Update, 2)
	updates <- items.Update{Items: liveRecords("a", "b")}
	updates <- items.Update{Items: liveRecords("a", "b", "c", "d")}

	m := newLiveModel(grid.New(nil, grid.Options{PerRow: 3}), updates)

	msg := nextUpdate(t, m.Init())
	next, cmd := m.Update(msg)
	m = next.(liveModel)
	assert.Len(t, m.grid.Items(), 2)
	require.NotNil(t, cmd, "the watch is re-armed")

	msg = nextUpdate(t, cmd)
	next, cmd = m.Update(msg)
	m = next.(liveModel)
	assert.Len(t, m.grid.Items(), 4)
	assert.Len(t, m.grid.Grid(), 2)
	require.NotNil(t, cmd)

	close(updates)
	assert.Empty(t, runCmd(cmd), "a closed source produces no more messages")
}

func TestLiveModel_ErrorKeepsItems(t *testing.T) {
	updates := make(chan items.Update, 1)
	m := newLiveModel(grid.New(liveRecords("a"), grid.Options{PerRow: 3}), updates)

	next, _ := m.Update(items.UpdateMsg{Err: assert.AnError})
	m = next.(liveModel)
	assert.Len(t, m.grid.Items(), 1)
	assert.ErrorIs(t, m.grid.Err(), assert.AnError)
}

func TestLiveModel_RestoreWaitsForItems(t *testing.T) {
	updates := make(chan items.Update, 1)
	m := newLiveModel(grid.New(nil, grid.Options{PerRow: 3}), updates)
	m = m.restorePosition(gridnav.Position{Row: 1, Col: 1})
	assert.Equal(t, gridnav.Position{}, m.grid.Position())

	next, _ := m.Update(items.UpdateMsg{Items: nil})
	m = next.(liveModel)
	assert.Equal(t, gridnav.Position{}, m.grid.Position(), "an empty snapshot keeps the restore pending")

	next, _ = m.Update(items.UpdateMsg{Items: liveRecords("a", "b", "c", "d", "e")})
	m = next.(liveModel)
	assert.Equal(t, gridnav.Position{Row: 1, Col: 1}, m.grid.Position())

	next, _ = m.Update(items.UpdateMsg{Items: liveRecords("a", "b", "c", "d", "e", "f")})
	m = next.(liveModel)
	assert.Equal(t, gridnav.Position{Row: 1, Col: 1}, m.grid.Position(), "applied only once")
}

func TestLiveModel_RestoreImmediately(t *testing.T) {
	m := newLiveModel(grid.New(liveRecords("a", "b", "c", "d"), grid.Options{PerRow: 2}), nil)
	m = m.restorePosition(gridnav.Position{Row: 1, Col: 0})
	assert.Equal(t, gridnav.Position{Row: 1, Col: 0}, m.grid.Position())
}

func TestSelectionOutput(t *testing.T) {
	entry := items.Entry{ID: 0, Name: "notes.md", Label: "notes.md", Path: "/tmp/notes.md", Size: 3}

	out, err := selectionOutput(entry.Record(), false)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/notes.md", out)

	out, err = selectionOutput(entry.Record(), true)
	require.NoError(t, err)
	assert.Contains(t, out, `"path":"/tmp/notes.md"`)

	out, err = selectionOutput(gridnav.Record{"id": 1, "label": "alpha"}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"label":"alpha"}`, out)
}
