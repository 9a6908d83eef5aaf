package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/chased/internal/catalog"
	"github.com/five82/chased/internal/config"
	"github.com/five82/chased/internal/prefs"
	"github.com/five82/chased/internal/state"
	"github.com/five82/chased/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/chased/prefs.toml
	Verbose    bool   // force debug logging
}

// Run boots the storefront TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Level()
	if opts.Verbose {
		level = zap.DebugLevel
	}
	logger, err := NewLogger(cfg.LogPath(), level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	store := &state.Store{}
	store.Update(cat, nil)
	logger.Info("storefront starting",
		zap.String("catalog", cat.Source),
		zap.Int("products", len(cat.Products)),
		zap.String("currency", cfg.Currency),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reloads := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		WatchCatalog(gctx, cfg.CatalogPath, store, logger.Named("catalog"), func() {
			select {
			case reloads <- struct{}{}:
			default:
			}
		})
		return nil
	})

	g.Go(func() error {
		// Quitting the UI stops the watcher.
		defer cancel()
		return ui.Run(ui.Options{
			Context:       gctx,
			Store:         store,
			Config:        cfg,
			Logger:        logger,
			ThemeName:     userPrefs.Theme,
			SidebarHidden: userPrefs.SidebarHidden,
			PrefsPath:     opts.PrefsPath,
			LogPath:       cfg.LogPath(),
			Reloads:       reloads,
		})
	})

	return g.Wait()
}
