package build

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/tagindex/internal/logfields"
	"git.home.luguber.info/inful/tagindex/internal/observability"
)

// DefaultDebounce is the quiet period Watch waits for after the last change.
const DefaultDebounce = 300 * time.Millisecond

// Watch monitors paths and calls fn once changes have settled for debounce.
// Directories are watched recursively; files are watched through their parent
// directory. Errors from fn are logged and watching continues. Watch blocks
// until ctx is done.
func Watch(ctx context.Context, paths []string, debounce time.Duration, fn func(context.Context) error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	w := &watchSet{watcher: watcher, files: map[string]bool{}}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := w.add(p); err != nil {
			observability.WarnContext(ctx, "Path not watched", logfields.Path(p), logfields.Error(err))
		}
	}
	if len(w.roots) == 0 && len(w.files) == 0 {
		return fmt.Errorf("no watchable paths in %v", paths)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addTree(event.Name)
				}
			}
			observability.InfoContext(ctx, "Change detected", logfields.Path(event.Name), logfields.Event(event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			observability.WarnContext(ctx, "Watcher error", logfields.Error(err))
		case <-timer.C:
			if err := fn(ctx); err != nil {
				observability.WarnContext(ctx, "Rebuild failed", logfields.Error(err))
			}
		}
	}
}

// watchSet tracks watched directory trees and individually watched files.
type watchSet struct {
	watcher *fsnotify.Watcher
	roots   []string
	files   map[string]bool
}

func (w *watchSet) add(p string) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		if err := w.addTree(abs); err != nil {
			return err
		}
		w.roots = append(w.roots, abs)
		return nil
	case err == nil || os.IsNotExist(err):
		// Watch the directory so the file is picked up when it is created.
		if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
		w.files[abs] = true
		return nil
	default:
		return err
	}
}

func (w *watchSet) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && hidden(d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}

func (w *watchSet) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	if w.files[name] {
		return true
	}
	if hidden(filepath.Base(name)) || strings.HasSuffix(name, "~") {
		return false
	}
	for _, root := range w.roots {
		if strings.HasPrefix(name, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
