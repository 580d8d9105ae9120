package preview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/fsutil"
)

// watcher monitors scene files and calls reload after changes settle.
type watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	reload   func()

	// file is set when watching a single scene file; events for other files
	// in its directory are ignored. Empty means directory mode, where every
	// scene file counts.
	file string
	dir  string
}

// newWatcher creates a watcher for a scene file or directory.
func newWatcher(path string, debounce time.Duration, reload func()) (*watcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &watcher{fs: fs, debounce: debounce, reload: reload, dir: path}
	if !info.IsDir() {
		// Editors replace files on save, dropping a watch on the file
		// itself. Watch the parent directory and filter by name.
		w.file = filepath.Base(path)
		w.dir = filepath.Dir(path)
	}
	return w, nil
}

// Start begins watching and spawns the event loop.
func (w *watcher) Start(ctx context.Context) error {
	if err := w.fs.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	ctxlog.FromContext(ctx).Info("Watching scene files", "dir", w.dir)
	go w.eventLoop(ctx)
	return nil
}

// eventLoop processes file system events. Reloads fire on the trailing edge
// of the debounce window so the rebuild sees the final file state of a rapid
// save burst.
func (w *watcher) eventLoop(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !w.relevant(event.Name) {
				continue
			}
			logger.Debug("Scene file changed", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Error("File watcher error", "error", err)
		}
	}
}

// relevant reports whether a change to the named file should trigger a
// reload.
func (w *watcher) relevant(name string) bool {
	if w.file != "" {
		return filepath.Base(name) == w.file
	}
	return filepath.Ext(name) == fsutil.SceneExtension
}

// Close stops the watcher.
func (w *watcher) Close() error {
	return w.fs.Close()
}
