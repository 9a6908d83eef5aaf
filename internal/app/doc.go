// Package app is the composition root for the storefront.
//
// Run loads the config file, opens the JSON log file, reads preferences and
// the product catalog, then runs two goroutines under an errgroup:
//
//	┌──────────────┐   store.Update    ┌──────────────┐
//	│ WatchCatalog │ ────────────────> │ state.Store  │
//	└──────┬───────┘                   └──────┬───────┘
//	       │ notify (reloads chan)            │ Snapshot
//	       └─────────────────────────────────>│ ui.Run (Bubble Tea)
//
// The watcher exists only when the config names a catalog file; the
// embedded catalog never changes. Quitting the UI cancels the watcher.
//
// Fatal errors (returned from Run):
//   - Invalid config file
//   - Log file cannot be created
//   - Initial catalog cannot be loaded
//
// Recoverable errors are logged and the UI keeps running:
//   - Catalog reload failures (previous catalog kept)
//   - Watcher failures (restarted with exponential backoff, capped at 30s)
package app
