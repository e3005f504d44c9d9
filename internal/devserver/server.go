// Package devserver serves a built site locally and rebuilds it when its
// inputs change.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Handler serves dir without directory listings and with caching disabled.
func Handler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := path.Clean("/" + r.URL.Path)
		if strings.HasSuffix(r.URL.Path, "/") && p != "/" {
			_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p), "index.html"))
			if err != nil {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fileServer.ServeHTTP(w, r)
	})
}

// Options configures Run.
type Options struct {
	Addr       string
	Dir        string
	WatchPaths []string
	Rebuild    func(context.Context) error
	Debounce   time.Duration
	Logger     *slog.Logger
}

// Run serves opts.Dir on opts.Addr and watches opts.WatchPaths until ctx is
// done or the server fails.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           Handler(opts.Dir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	watcher := NewWatcher(opts.WatchPaths, opts.Rebuild, opts.Debounce, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving site", "dir", opts.Dir, "addr", opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	return g.Wait()
}
