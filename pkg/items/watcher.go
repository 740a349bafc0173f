package items

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/gridnav/errors"
	"github.com/grovetools/gridnav/logging"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// DefaultDebounce is the quiet period a Watcher waits for before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Update is one snapshot of a live item source.
type Update struct {
	Items []gridnav.Record
	Err   error
}

// Watcher reloads an item file or directory whenever it changes on disk.
type Watcher struct {
	path     string
	isDir    bool
	excludes []string
	debounce time.Duration

	watcher *fsnotify.Watcher
	updates chan Update
	logger  *logrus.Entry

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewWatcher watches path. A file is watched through its parent directory
// so that editors which replace the file on save are still seen.
func NewWatcher(path string, excludes []string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WatchFailed(path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ItemsNotFound(path)
		}
		return nil, errors.WatchFailed(path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WatchFailed(path, err)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.WatchFailed(path, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		isDir:    info.IsDir(),
		excludes: excludes,
		debounce: debounce,
		watcher:  watcher,
		updates:  make(chan Update, 1),
		logger:   logging.NewLogger("items-watcher"),
	}, nil
}

// Updates delivers a fresh snapshot after each settled change.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Start processes file events. It blocks until the context is cancelled or
// the watcher is closed, and closes the Updates channel on return.
func (w *Watcher) Start(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if w.relevant(event) {
				w.schedule(ctx)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
			w.send(ctx, Update{Err: errors.WatchFailed(w.path, err)})
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if w.isDir {
		return true
	}
	return filepath.Clean(event.Name) == w.path
}

// schedule restarts the debounce timer; the reload runs once events stop
// arriving for the debounce period.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.reload(ctx)
	})
}

// shutdown stops any pending reload and closes Updates. A reload already
// running sees closed and drops its result.
func (w *Watcher) shutdown() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.closed = true
	close(w.updates)
}

func (w *Watcher) reload(ctx context.Context) {
	var (
		records []gridnav.Record
		err     error
	)
	if w.isDir {
		records, err = FromDir(w.path, w.excludes)
	} else {
		records, err = LoadFile(w.path)
	}

	if err != nil {
		// a save in progress can leave the file missing or half written
		w.logger.WithError(err).Debug("Reload failed")
	} else {
		w.logger.WithField("count", len(records)).Info("Items reloaded")
	}
	w.send(ctx, Update{Items: records, Err: err})
}

// send replaces any snapshot still waiting in the channel so readers only
// ever see the latest state.
func (w *Watcher) send(ctx context.Context, u Update) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || ctx.Err() != nil {
		return
	}
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- u:
	default:
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
