// Package watch reruns a handler when the content tree changes.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/logfields"
)

// Handler is invoked once per debounced burst of changes. runID identifies
// the run in logs.
type Handler func(ctx context.Context, runID string) error

// Watcher watches a directory tree recursively.
type Watcher struct {
	root     string
	debounce time.Duration
	handler  Handler
}

func New(root string, debounce time.Duration, handler Handler) *Watcher {
	return &Watcher{root: root, debounce: debounce, handler: handler}
}

// Run watches until ctx is cancelled. When initial is true the handler also
// runs once before the first change.
func (w *Watcher) Run(ctx context.Context, initial bool) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "create file watcher").Build()
	}
	defer func() { _ = fsw.Close() }()

	if err := w.addTree(fsw, w.root); err != nil {
		return err
	}
	slog.Info("Watching content", logfields.Path(w.root), slog.Duration("debounce", w.debounce))

	if initial {
		w.fire(ctx)
	}

	// fire is nil while no change is pending.
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(fsw, ev) {
				continue
			}
			slog.Debug("Content change", logfields.Path(ev.Name), logfields.Event(ev.Op.String()))
			fire = time.After(w.debounce)
		case <-fire:
			fire = nil
			w.fire(ctx)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) fire(ctx context.Context) {
	runID := uuid.NewString()
	start := time.Now()
	err := w.handler(ctx, runID)
	attrs := []any{logfields.RunID(runID), logfields.DurationMS(float64(time.Since(start).Microseconds()) / 1000)}
	if err != nil {
		slog.Error("Watch run failed", append(attrs, logfields.Error(err))...)
		return
	}
	slog.Debug("Watch run finished", attrs...)
}

// relevant filters events down to Markdown files and directories. New
// directories are added to the watch list.
func (w *Watcher) relevant(fsw *fsnotify.Watcher, ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod || hidden(w.root, ev.Name) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(fsw, ev.Name); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(ev.Name), logfields.Error(err))
			}
			return true
		}
	}
	if strings.EqualFold(filepath.Ext(ev.Name), ".md") {
		return true
	}
	// Removed or renamed directories have no extension and can no longer be
	// stat'ed.
	return filepath.Ext(ev.Name) == "" && (ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename))
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, dir string) error {
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fsw.Add(p)
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ferrors.NotFoundError("watch root does not exist").WithContext("path", dir).Build()
		}
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "watch directory").WithContext("path", dir).Build()
	}
	return nil
}

func hidden(root, name string) bool {
	rel, err := filepath.Rel(root, name)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
