package state

import (
	"slices"
	"sync"
	"time"

	"github.com/five82/slicer/internal/reveal"
)

// Snapshot is the latest reveal state published by the UI loop.
type Snapshot struct {
	State       reveal.State
	HasState    bool
	Changes     int // number of published state changes
	Opens       int // fullscreen opens seen
	LastUpdated time.Time
}

// Busy reports whether a click-initiated sequence was in flight.
func (s Snapshot) Busy() bool {
	return s.HasState && s.State.Animating
}

// Store coordinates the UI goroutine publishing snapshots with readers on
// other goroutines.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a new machine state.
func (s *Store) Update(st reveal.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Opened != "" && s.snapshot.State.Opened != st.Opened {
		s.snapshot.Opens++
	}
	s.snapshot.State = cloneState(st)
	s.snapshot.HasState = true
	s.snapshot.Changes++
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.State = cloneState(s.snapshot.State)
	return snap
}

func cloneState(st reveal.State) reveal.State {
	st.Mounted = slices.Clone(st.Mounted)
	if st.Phases != nil {
		phases := make(map[string]reveal.Phase, len(st.Phases))
		for k, v := range st.Phases {
			phases[k] = v
		}
		st.Phases = phases
	}
	return st
}
