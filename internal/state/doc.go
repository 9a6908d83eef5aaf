// Package state shares the current product catalog between the catalog
// watcher and the UI.
//
// The watcher goroutine calls Update after every reload attempt; the UI
// reads a Snapshot when it is told a reload happened. A failed reload keeps
// the previous catalog and records the error, so the page never empties
// because of a half-saved file.
//
//	store := &state.Store{}
//	store.Update(cat, nil)        // replace catalog, clear error
//	store.Update(catalog.Catalog{}, err) // keep catalog, record err
//	snap := store.Snapshot()      // deep copy, safe to mutate
//
// The zero Store is ready to use. Snapshot copies the catalog slices so the
// UI can hold on to a snapshot while the watcher keeps writing.
package state
