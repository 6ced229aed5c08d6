package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/slicer/internal/reveal"
)

// timerMsg fires a scheduled callback by id.
type timerMsg int

// scheduler implements reveal.Scheduler on top of tea.Tick. Callbacks run
// inside Update when their timerMsg arrives, so the machine only ever sees
// one goroutine.
type scheduler struct {
	next    int
	pending map[int]func()
	cmds    []tea.Cmd
}

func newScheduler() *scheduler {
	return &scheduler{pending: make(map[int]func())}
}

// After implements reveal.Scheduler.
func (s *scheduler) After(d time.Duration, fn func()) reveal.Timer {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg(id)
	}))
	return &timer{s: s, id: id}
}

// fire runs the callback for id unless it was stopped.
func (s *scheduler) fire(id timerMsg) bool {
	fn, ok := s.pending[int(id)]
	if !ok {
		return false
	}
	delete(s.pending, int(id))
	fn()
	return true
}

// drain returns the ticks queued since the last drain.
func (s *scheduler) drain() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return cmds
}

type timer struct {
	s  *scheduler
	id int
}

func (t *timer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}
