package batch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch re-runs fn on the input file every time it is written,
// debounced so editors that write in several syscalls trigger one
// decode. The initial decode runs immediately. Watch blocks until ctx
// is cancelled.
func Watch(ctx context.Context, path string, debounce time.Duration, fn ProcessFunc, log *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files by
	// rename, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	run := func() {
		runID := zap.String("run_id", newRunID())
		flog := log.With(zap.String("file", path), runID)
		if err := fn(ctx, path, flog); err != nil {
			flog.Error("decode failed", zap.Error(err))
		} else {
			flog.Info("decode complete")
		}
	}
	run()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		case <-fire:
			run()
		}
	}
}
