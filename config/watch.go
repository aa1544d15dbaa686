package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/colorfx"
)

// Watch calls fn with the reloaded settings each time the file at path is
// written, created or renamed into place. The parent directory is watched
// so editors that replace the file atomically are picked up.
//
// A file that fails to load is logged and skipped; fn keeps the last good
// settings. Watch blocks until ctx is done and then returns nil.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config: failed to watch %s: %w", target, err)
	}

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
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := Load(target)
			if err != nil {
				colorfx.Logger().Warn("config: reload failed", "path", target, "err", err)
				continue
			}
			fn(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			colorfx.Logger().Warn("config: watcher error", "err", err)
		}
	}
}
