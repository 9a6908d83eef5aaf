package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog at path whenever the file changes and reports the
// result to onChange. A failed reload is reported with its error; callers keep
// their last good catalog. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so editors that save by
// rename are still seen.
func Watch(ctx context.Context, path string, onChange func(Catalog, error)) error {
	if path == "" {
		<-ctx.Done()
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch catalog dir: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cat, err := Load(abs)
			onChange(cat, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(Catalog{}, fmt.Errorf("catalog watcher: %w", err))
		}
	}
}
