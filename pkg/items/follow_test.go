package items

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/gridnav/errors"
)

func TestFollower(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "feed.jsonl", "{\"id\": 1}\nnot json\n{\"id\": 2}\n")

	f, err := NewFollower(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.Start(ctx)

	u := nextUpdate(t, f.Updates())
	assert.Len(t, u.Items, 1)
	u = nextUpdate(t, f.Updates())
	require.Len(t, u.Items, 2, "malformed lines are skipped")
	assert.EqualValues(t, 2, u.Items[1]["id"])

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = file.WriteString("{\"id\": 3}\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	u = nextUpdate(t, f.Updates())
	assert.Len(t, u.Items, 3)

	cancel()
}

func TestFollower_TailEndReleasesWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "feed.jsonl", "{\"id\": 1}\n")

	f, err := NewFollower(path)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		f.Start(context.Background())
		close(done)
	}()

	nextUpdate(t, f.Updates())

	// ending the tail underneath the follower closes its line channel
	require.NoError(t, f.t.Stop())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the tail ended")
	}
	_, ok := <-f.Updates()
	assert.False(t, ok)

	cleaned := true
	f.stop.Do(func() { cleaned = false })
	assert.True(t, cleaned, "Start stops the follower when the tail ends")
	f.Stop()
}

func TestNewFollower_Missing(t *testing.T) {
	_, err := NewFollower(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.True(t, errors.Is(err, errors.ErrCodeWatchFailed))
}
