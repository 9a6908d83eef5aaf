package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/chased/internal/catalog"
)

// Snapshot represents the catalog the UI should show.
type Snapshot struct {
	Catalog             catalog.Catalog
	HasCatalog          bool
	Version             uint64 // Incremented on every successful update
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive reload failures
}

// IsDegraded returns true when the catalog file has failed to reload
// several times in a row.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous
// catalog is kept but the error is recorded for visibility.
func (s *Store) Update(cat catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Catalog = cat.Clone()
	s.snapshot.HasCatalog = true
	s.snapshot.Version++
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = s.snapshot.Catalog.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
