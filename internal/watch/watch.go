// Package watch re-triggers work when a single file changes on disk.
//
// The parent directory is watched rather than the file itself so atomic-save
// editors (write temp file, rename over the original) keep firing events
// after the original inode is replaced.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// File calls onChange each time path is written or (re)created.
// It runs until ctx is cancelled and returns nil in that case.
func File(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: new watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch: add %q: %w", filepath.Dir(target), err)
	}

	slog.Info("watch: watching for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("watch: change detected", "path", target, "op", event.Op.String())
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: watcher error", "err", err)
		}
	}
}
