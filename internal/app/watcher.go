package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/chased/internal/catalog"
	"github.com/five82/chased/internal/state"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// WatchCatalog keeps the store in step with the catalog file until ctx is
// cancelled. notify runs after every reload attempt. If the watcher itself
// fails (for example the directory vanished) it is restarted with
// exponential backoff.
func WatchCatalog(ctx context.Context, path string, store *state.Store, logger *zap.Logger, notify func()) {
	watchCatalog(ctx, path, store, logger, notify, defaultRetryInterval)
}

func watchCatalog(ctx context.Context, path string, store *state.Store, logger *zap.Logger, notify func(), retry time.Duration) {
	if path == "" {
		<-ctx.Done()
		return
	}

	onChange := func(cat catalog.Catalog, err error) {
		store.Update(cat, err)
		if err != nil {
			logger.Warn("catalog reload failed; keeping previous catalog",
				zap.String("path", path),
				zap.Error(err),
				zap.Int("consecutive_failures", store.Snapshot().ConsecutiveFailures),
			)
		} else {
			logger.Info("catalog reloaded",
				zap.String("path", path),
				zap.Int("products", len(cat.Products)),
			)
		}
		if notify != nil {
			notify()
		}
	}

	failures := 0
	for {
		err := catalog.Watch(ctx, path, onChange)
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			failures = 0
			continue
		}

		wait := calculateBackoff(failures, retry)
		failures++
		logger.Warn("catalog watcher stopped; retrying",
			zap.Error(err),
			zap.Duration("retry_in", wait),
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// calculateBackoff doubles base for every prior failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
