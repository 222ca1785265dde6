package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/DjordjeVuckovic/mcalc/internal/calc"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// watchSuite runs the suite, then again after every change to the suite file,
// until ctx is done. It reports whether the last run passed. The parent
// directory is watched to catch files replaced on save.
func watchSuite(ctx context.Context, cfg cliConfig, ev *calc.Evaluator, stdout io.Writer) bool {
	passed := runSuite(ctx, cfg, ev, stdout)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create file watcher", "error", err)
		return false
	}
	defer watcher.Close()

	target, err := filepath.Abs(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to resolve suite path", "path", cfg.SuitePath, "error", err)
		return false
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		slog.Error("Failed to watch suite directory", "path", target, "error", err)
		return false
	}
	slog.Info("Watching suite for changes", "path", target)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return passed
		case event, ok := <-watcher.Events:
			if !ok {
				return passed
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			debounce = time.After(watchDebounce)
		case <-debounce:
			debounce = nil
			slog.Info("Suite changed, running again", "path", target)
			passed = runSuite(ctx, cfg, ev, stdout)
		case err, ok := <-watcher.Errors:
			if !ok {
				return passed
			}
			slog.Error("File watcher error", "error", err)
		}
	}
}
