package state

import (
	"sync"
	"time"

	"github.com/five82/vantage/internal/alerts"
)

// DefaultCapacity bounds the collection when no capacity is configured.
const DefaultCapacity = 5000

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Alerts      []alerts.Alert
	Version     uint64
	LastUpdated time.Time
	Evicted     int // Total records dropped by the capacity cap
}

// Store coordinates concurrent access to the canonical collection.
type Store struct {
	mu       sync.RWMutex
	capacity int
	snapshot Snapshot
}

// NewStore returns a store holding at most capacity alerts.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Capacity returns the maximum number of retained alerts.
func (s *Store) Capacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capacityLocked()
}

func (s *Store) capacityLocked() int {
	if s.capacity <= 0 {
		return DefaultCapacity
	}
	return s.capacity
}

// Prepend inserts a at the head and returns how many records were evicted.
func (s *Store) Prepend(a alerts.Alert) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := s.capacityLocked()
	next := make([]alerts.Alert, 0, min(len(s.snapshot.Alerts)+1, limit))
	next = append(next, a)
	keep := min(len(s.snapshot.Alerts), limit-1)
	next = append(next, s.snapshot.Alerts[:keep]...)
	evicted := len(s.snapshot.Alerts) - keep

	s.commit(next, evicted)
	return evicted
}

// Replace installs records as the whole collection, newest first, and
// returns how many were dropped by the cap.
func (s *Store) Replace(records []alerts.Alert) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := s.capacityLocked()
	next := cloneAlerts(records)
	alerts.SortNewestFirst(next)
	evicted := 0
	if len(next) > limit {
		evicted = len(next) - limit
		next = next[:limit]
	}

	s.commit(next, evicted)
	return evicted
}

func (s *Store) commit(next []alerts.Alert, evicted int) {
	s.snapshot.Alerts = next
	s.snapshot.Version++
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Evicted += evicted
}

// Len returns the number of stored alerts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Alerts)
}

// Version returns the current version without copying.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// SnapshotIfChanged returns a copy only when the version differs from seen.
func (s *Store) SnapshotIfChanged(seen uint64) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot.Version == seen {
		return Snapshot{}, false
	}
	return s.copyLocked(), true
}

func (s *Store) copyLocked() Snapshot {
	snap := s.snapshot
	snap.Alerts = cloneAlerts(s.snapshot.Alerts)
	return snap
}

func cloneAlerts(items []alerts.Alert) []alerts.Alert {
	if len(items) == 0 {
		return nil
	}
	dup := make([]alerts.Alert, len(items))
	copy(dup, items)
	return dup
}
