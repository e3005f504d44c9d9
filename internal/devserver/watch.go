package devserver

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls a rebuild function whenever one of its inputs changes.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	rebuild  func(context.Context) error
	debounce time.Duration
	logger   *slog.Logger
	ready    chan struct{}
}

// NewWatcher watches paths, which may be files or directory trees. Empty
// paths and paths that do not exist yet are ignored.
func NewWatcher(paths []string, rebuild func(context.Context) error, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		files:    make(map[string]bool),
		rebuild:  rebuild,
		debounce: debounce,
		logger:   logger,
		ready:    make(chan struct{}),
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		info, err := os.Stat(p)
		if err != nil {
			logger.Info("not watching missing path", "path", p)
			continue
		}
		if info.IsDir() {
			w.dirs = append(w.dirs, p)
		} else {
			w.files[p] = true
		}
	}
	return w
}

// Ready is closed once Run has registered all watches.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is done. It must be called at most once. Rebuild errors are logged, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	// Files are watched through their directory so that editors which
	// save by rename keep triggering events.
	for f := range w.files {
		if err := fw.Add(filepath.Dir(f)); err != nil {
			w.logger.Warn("failed to watch", "path", f, "err", err)
		}
	}
	for _, root := range w.dirs {
		w.addTree(fw, root)
	}
	close(w.ready)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && w.underDir(event.Name) && isDir(event.Name) {
				w.logger.Info("new directory, adding to watcher", "path", event.Name)
				w.addTree(fw, event.Name)
			}
			if !w.relevant(event.Name) {
				continue
			}
			w.logger.Info("change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			w.logger.Info("rebuilding site")
			if err := w.rebuild(ctx); err != nil {
				w.logger.Error("rebuild failed", "err", err)
			} else {
				w.logger.Info("site rebuilt")
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)
		}
	}
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("error walking", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				w.logger.Warn("failed to watch", "path", path, "err", err)
			}
		}
		return nil
	})
	if err != nil {
		w.logger.Warn("error walking", "path", root, "err", err)
	}
}

func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	return w.files[name] || w.underDir(name)
}

func (w *Watcher) underDir(name string) bool {
	for _, d := range w.dirs {
		if name == d || strings.HasPrefix(name, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
