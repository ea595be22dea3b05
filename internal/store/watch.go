package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDebounce = 150 * time.Millisecond

// pathBackend is implemented by backends that keep a key in its own file.
type pathBackend interface {
	Path(key string) string
}

// Watch calls fn after the collection's file changes on disk, for example when
// another process saves. Bursts of events are collapsed into one call.
// It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, fn func()) error {
	pb, ok := s.backend.(pathBackend)
	if !ok {
		return ErrWatchUnsupported
	}
	target := filepath.Clean(pb.Path(Key))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: atomic saves replace the file, which drops a file watch.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				fire = time.After(watchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			fn()
		}
	}
}
