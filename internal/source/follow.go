package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atomicstack/pathtree/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// ErrFileRemoved is reported when a followed input disappears.
var ErrFileRemoved = errors.New("followed input was removed")

// follower signals changes whenever the followed file is written.
type follower struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan<- struct{}
}

func newFollower(path string, changes chan<- struct{}) (*follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("follow %s: %w", path, err)
	}
	if err := w.Add(abs); err != nil {
		w.Close()
		return nil, fmt.Errorf("follow %s: %w", path, err)
	}
	return &follower{path: abs, watcher: w, changes: changes}, nil
}

func (f *follower) run(ctx context.Context) error {
	defer f.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			switch {
			case evt.Has(fsnotify.Write):
				events.Source.Follow(f.path, "write")
				f.notify()
			case evt.Has(fsnotify.Remove), evt.Has(fsnotify.Rename):
				events.Source.Follow(f.path, evt.Op.String())
				return fmt.Errorf("%w: %s", ErrFileRemoved, f.path)
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("follow %s: %w", f.path, err)
		}
	}
}

// notify never blocks; one pending signal is enough to trigger a re-read.
func (f *follower) notify() {
	select {
	case f.changes <- struct{}{}:
	default:
	}
}
