// Package state holds the canonical alert collection shared between the
// alert source and the UI.
//
// # Overview
//
// The alert source runs on its own goroutine and prepends records; the UI
// reads copies on its refresh tick. Store mediates between the two:
//
//	Producer (stream):             Consumer (UI):
//	┌────────────────┐            ┌──────────────────┐
//	│ generate alert │            │ refresh tick     │
//	│      ↓         │            │      ↓           │
//	│ store.Prepend()│───────────→│ store.SnapshotIf │
//	│      ↓         │  (mutex)   │ Changed()        │
//	│  next tick     │            │      ↓           │
//	└────────────────┘            │ filter + render  │
//	                              └──────────────────┘
//
// # Ordering and capacity
//
// The collection is kept newest-first. Prepend inserts at index 0 and evicts
// from the tail once the capacity is exceeded, returning how many records
// were dropped. Replace installs a whole collection (used for seeding) and
// applies the same cap.
//
// # Versions
//
// Every mutation bumps Snapshot.Version. The UI remembers the last version
// it rendered and uses SnapshotIfChanged to avoid copying thousands of
// records when nothing happened.
//
// # Concurrency
//
// All access goes through a sync.RWMutex. Snapshots are returned by value
// with the alert slice copied, so callers may keep or modify them freely.
package state
