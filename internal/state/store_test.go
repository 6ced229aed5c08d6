package state

import (
	"sync"
	"testing"
	"time"

	"github.com/five82/slicer/internal/reveal"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(reveal.State{
		Phase:   reveal.Previewing,
		Current: "a",
		Mounted: []string{"a"},
		Phases:  map[string]reveal.Phase{"a": reveal.Previewing},
	})

	snap := s.Snapshot()
	if !snap.HasState || snap.State.Current != "a" {
		t.Fatalf("snapshot = %#v, want current a", snap)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.Changes != 1 {
		t.Fatalf("Changes = %d, want 1", snap.Changes)
	}

	// Returned snapshot should be independent of the stored one.
	snap.State.Mounted[0] = "zzz"
	snap.State.Phases["a"] = reveal.Idle
	snap2 := s.Snapshot()
	if snap2.State.Mounted[0] != "a" || snap2.State.Phases["a"] != reveal.Previewing {
		t.Fatalf("Snapshot should clone state; got %#v", snap2.State)
	}
}

func TestStore_CountsOpens(t *testing.T) {
	var s Store

	s.Update(reveal.State{Current: "a", Opened: "a", Animating: true})
	s.Update(reveal.State{Current: "a", Opened: "a"})
	s.Update(reveal.State{Current: "a"})
	s.Update(reveal.State{Current: "b", Opened: "b", Animating: true})

	snap := s.Snapshot()
	if snap.Opens != 2 {
		t.Fatalf("Opens = %d, want 2", snap.Opens)
	}
	if !snap.Busy() {
		t.Fatal("Busy() = false, want true while animating")
	}
}

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.HasState || snap.Busy() {
		t.Fatalf("zero snapshot = %#v", snap)
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Snapshot()
			}
		}()
	}
	for j := 0; j < 100; j++ {
		s.Update(reveal.State{Current: "a", Mounted: []string{"a"}})
	}
	wg.Wait()
	if got := s.Snapshot().Changes; got != 100 {
		t.Fatalf("Changes = %d, want 100", got)
	}
}
