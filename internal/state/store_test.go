package state

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/five82/vantage/internal/alerts"
)

func alertAt(id string, offset time.Duration) alerts.Alert {
	base := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	return alerts.Alert{ID: id, Timestamp: base.Add(offset), Severity: alerts.SeverityLow}
}

func TestStore_PrependAndSnapshotClone(t *testing.T) {
	s := NewStore(10)

	before := time.Now()
	s.Prepend(alertAt("1", 0))
	s.Prepend(alertAt("2", time.Second))

	snap := s.Snapshot()
	if len(snap.Alerts) != 2 || snap.Alerts[0].ID != "2" || snap.Alerts[1].ID != "1" {
		t.Fatalf("snapshot alerts = %#v, want [2 1]", snap.Alerts)
	}
	if snap.Version != 2 {
		t.Fatalf("Version = %d, want 2", snap.Version)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Alerts[0].ID = "999"
	snap2 := s.Snapshot()
	if snap2.Alerts[0].ID != "2" {
		t.Fatalf("Snapshot should clone alerts; got id %s want 2", snap2.Alerts[0].ID)
	}
}

func TestStore_PrependEvictsOldest(t *testing.T) {
	s := NewStore(3)
	evicted := 0
	for i := 0; i < 5; i++ {
		evicted += s.Prepend(alertAt(fmt.Sprint(i), time.Duration(i)*time.Second))
	}

	snap := s.Snapshot()
	if evicted != 2 || snap.Evicted != 2 {
		t.Fatalf("evicted = %d (snapshot %d), want 2", evicted, snap.Evicted)
	}
	var got []string
	for _, a := range snap.Alerts {
		got = append(got, a.ID)
	}
	if fmt.Sprint(got) != "[4 3 2]" {
		t.Fatalf("alerts = %v, want [4 3 2]", got)
	}
}

func TestStore_ReplaceSortsAndCaps(t *testing.T) {
	s := NewStore(2)
	evicted := s.Replace([]alerts.Alert{
		alertAt("old", 0),
		alertAt("new", 2*time.Second),
		alertAt("mid", time.Second),
	})
	if evicted != 1 {
		t.Fatalf("Replace evicted = %d, want 1", evicted)
	}
	snap := s.Snapshot()
	if len(snap.Alerts) != 2 || snap.Alerts[0].ID != "new" || snap.Alerts[1].ID != "mid" {
		t.Fatalf("alerts = %#v, want [new mid]", snap.Alerts)
	}
}

func TestStore_SnapshotIfChanged(t *testing.T) {
	s := NewStore(0)
	if s.Capacity() != DefaultCapacity {
		t.Fatalf("Capacity = %d, want %d", s.Capacity(), DefaultCapacity)
	}

	if _, ok := s.SnapshotIfChanged(0); ok {
		t.Fatal("SnapshotIfChanged(0) on empty store = changed, want unchanged")
	}

	s.Prepend(alertAt("1", 0))
	snap, ok := s.SnapshotIfChanged(0)
	if !ok || len(snap.Alerts) != 1 {
		t.Fatalf("SnapshotIfChanged(0) = %v %#v, want changed with 1 alert", ok, snap)
	}
	if _, ok := s.SnapshotIfChanged(snap.Version); ok {
		t.Fatal("SnapshotIfChanged(current) = changed, want unchanged")
	}
	if s.Len() != 1 || s.Version() != snap.Version {
		t.Fatalf("Len/Version = %d/%d, want 1/%d", s.Len(), s.Version(), snap.Version)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore(50)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Prepend(alertAt(fmt.Sprint(i), time.Duration(i)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = s.Snapshot()
		}
	}()
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("Len = %d, want 50", s.Len())
	}
}
