package items

import (
	"context"
	"io"
	stdlog "log"
	"sync"

	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/gridnav/errors"
	"github.com/grovetools/gridnav/logging"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// Follower tails a JSON Lines file, growing the record list as lines are
// appended. Every accepted line produces a snapshot of the full list.
type Follower struct {
	path    string
	t       *tail.Tail
	updates chan Update
	records []gridnav.Record
	logger  *logrus.Entry
	stop    sync.Once
}

// NewFollower starts tailing path from its first line.
func NewFollower(path string) (*Follower, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekStart},
		Logger:    stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return nil, errors.WatchFailed(path, err)
	}

	return &Follower{
		path:    path,
		t:       t,
		updates: make(chan Update, 16),
		logger:  logging.NewLogger("items-follower"),
	}, nil
}

// Updates delivers a snapshot after each parsed line.
func (f *Follower) Updates() <-chan Update {
	return f.updates
}

// Start consumes tailed lines until the context is cancelled or the tail
// ends. Lines that are not valid JSON are logged and skipped.
func (f *Follower) Start(ctx context.Context) {
	defer close(f.updates)

	for {
		select {
		case line, ok := <-f.t.Lines:
			if !ok {
				f.Stop()
				return
			}
			if line.Err != nil {
				f.emit(ctx, Update{Err: errors.WatchFailed(f.path, line.Err)})
				continue
			}

			rec, err := ParseLine(line.Text)
			if err != nil {
				f.logger.WithError(err).Warnf("Skipping malformed line in %s", f.path)
				continue
			}
			if rec == nil {
				continue
			}

			f.records = append(f.records, rec)
			snapshot := make([]gridnav.Record, len(f.records))
			copy(snapshot, f.records)
			f.emit(ctx, Update{Items: snapshot})

		case <-ctx.Done():
			f.Stop()
			return
		}
	}
}

func (f *Follower) emit(ctx context.Context, u Update) {
	select {
	case f.updates <- u:
	case <-ctx.Done():
	}
}

// Stop halts tailing.
func (f *Follower) Stop() {
	f.stop.Do(func() {
		f.t.Stop()
		f.t.Cleanup()
	})
}
