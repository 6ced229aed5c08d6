package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/five82/slicer/internal/config"
	"github.com/five82/slicer/internal/content"
	"github.com/five82/slicer/internal/reveal"
	"github.com/five82/slicer/internal/state"
)

type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time { return c.t }

func (c *manualClock) add(d time.Duration) { c.t = c.t.Add(d) }

// newTestModel returns a demo model 80 cells wide (four 20-cell slices) with
// a 20-row surface, already sized.
func newTestModel(t *testing.T, hover bool) (Model, *manualClock, *state.Store) {
	t.Helper()
	cfg := config.Demo()
	cfg.Hover = hover
	clock := &manualClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	store := &state.Store{}
	m := New(Options{
		Config:  cfg,
		Content: content.NewRegistry(cfg.Content),
		Store:   store,
		Now:     clock.now,
	})
	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 21})
	return m, clock, store
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

// settle advances the clock past one transition and delivers a frame.
func settle(t *testing.T, m Model, c *manualClock) Model {
	t.Helper()
	c.add(500 * time.Millisecond)
	return step(t, m, frameMsg(c.now()))
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_FirstResizeRevealsFirstSlice(t *testing.T) {
	m, clock, store := newTestModel(t, true)

	st := m.Machine().State()
	if st.Current != "dusk" || st.Phase != reveal.RevealingIn {
		t.Fatalf("state after first size = %s %s, want dusk revealing-in", st.Current, st.Phase)
	}
	if !m.framePending {
		t.Fatalf("frame loop not started")
	}

	m = settle(t, m, clock)
	if got := m.Machine().State().Phase; got != reveal.Previewing {
		t.Fatalf("phase after settle = %s, want previewing", got)
	}
	if m.framePending {
		t.Fatalf("frame loop still armed with nothing in flight")
	}
	if snap := store.Snapshot(); !snap.HasState || snap.State.Current != "dusk" {
		t.Fatalf("store snapshot = %+v", snap)
	}
}

func TestModel_ClickOnlySkipsEagerReveal(t *testing.T) {
	m, _, _ := newTestModel(t, false)

	if st := m.Machine().State(); st.Current != "" || len(st.Mounted) != 0 {
		t.Fatalf("click-only model revealed %q", st.Current)
	}
	m = step(t, m, motion(30, 5))
	if st := m.Machine().State(); st.Current != "" {
		t.Fatalf("motion revealed %q in click-only mode", st.Current)
	}

	m = step(t, m, press(30, 5))
	st := m.Machine().State()
	if st.Opened != "tide" || !st.Fullscreen {
		t.Fatalf("click in click-only mode: opened=%q fullscreen=%v", st.Opened, st.Fullscreen)
	}
}

func TestModel_MotionSwitchesSlices(t *testing.T) {
	m, clock, _ := newTestModel(t, true)
	m = settle(t, m, clock)

	m = step(t, m, motion(30, 5))
	st := m.Machine().State()
	if st.Current != "tide" || st.Phase != reveal.RevealingIn {
		t.Fatalf("after motion: %s %s, want tide revealing-in", st.Current, st.Phase)
	}
	if diff := cmp.Diff([]string{"dusk", "tide"}, st.Mounted); diff != "" {
		t.Fatalf("Mounted (-want +got):\n%s", diff)
	}
	if st.Phases["dusk"] != reveal.RevealingOut {
		t.Fatalf("dusk phase = %s, want revealing-out", st.Phases["dusk"])
	}

	m = settle(t, m, clock)
	st = m.Machine().State()
	if diff := cmp.Diff([]string{"tide"}, st.Mounted); diff != "" {
		t.Fatalf("Mounted after settle (-want +got):\n%s", diff)
	}
	if st.Phase != reveal.Previewing {
		t.Fatalf("tide phase = %s, want previewing", st.Phase)
	}
}

func TestModel_LeaveIsDebouncedThroughScheduler(t *testing.T) {
	m, clock, _ := newTestModel(t, true)
	m = step(t, m, motion(5, 5))
	m = settle(t, m, clock)

	// The status row is outside every slice.
	next, cmd := m.Update(motion(5, 20))
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("leave did not schedule a timer")
	}
	if len(m.sched.pending) != 1 {
		t.Fatalf("pending timers = %d, want 1", len(m.sched.pending))
	}
	if got := m.Machine().State().Phase; got != reveal.Previewing {
		t.Fatalf("phase before debounce = %s, want previewing", got)
	}

	for id := range m.sched.pending {
		m = step(t, m, timerMsg(id))
	}
	if got := m.Machine().State().Phase; got != reveal.RevealingOut {
		t.Fatalf("phase after debounce = %s, want revealing-out", got)
	}
	m = settle(t, m, clock)
	if st := m.Machine().State(); st.Current != "" || len(st.Mounted) != 0 {
		t.Fatalf("state after slide-out = %+v", st)
	}
}

func TestModel_ReenterCancelsLeave(t *testing.T) {
	m, clock, _ := newTestModel(t, true)
	m = step(t, m, motion(5, 5))
	m = settle(t, m, clock)

	m = step(t, m, motion(5, 20))
	m = step(t, m, motion(6, 5))
	if len(m.sched.pending) != 0 {
		t.Fatalf("re-enter left %d pending timers", len(m.sched.pending))
	}
	if got := m.Machine().State().Phase; got != reveal.Previewing {
		t.Fatalf("phase = %s, want previewing", got)
	}
}

func TestModel_ClickOpensAndOutsideClickCloses(t *testing.T) {
	m, clock, store := newTestModel(t, true)
	m = step(t, m, motion(30, 5))
	m = settle(t, m, clock)

	m = step(t, m, press(30, 5))
	st := m.Machine().State()
	if st.Opened != "tide" || st.Phase != reveal.Expanding || !st.Animating {
		t.Fatalf("after click: %+v", st)
	}
	// The portal covers the grid; motion no longer maps to slices.
	m = step(t, m, motion(70, 5))
	if m.pointer != -1 {
		t.Fatalf("pointer = %d while fullscreen, want -1", m.pointer)
	}

	m = settle(t, m, clock)
	st = m.Machine().State()
	if st.Phase != reveal.FullscreenOpen || !st.GridHidden || st.Animating {
		t.Fatalf("after expand: %+v", st)
	}

	m = step(t, m, press(70, 5))
	if got := m.Machine().State().Phase; got != reveal.Shrinking {
		t.Fatalf("phase after outside click = %s, want shrinking", got)
	}
	m = settle(t, m, clock)
	st = m.Machine().State()
	if st.Phase != reveal.ShrinkingOut || !st.Animating || st.Fullscreen {
		t.Fatalf("after shrink: %+v", st)
	}
	m = settle(t, m, clock)
	st = m.Machine().State()
	if st.Current != "" || st.Animating || len(st.Mounted) != 0 {
		t.Fatalf("after slide-out: %+v", st)
	}
	if got := store.Snapshot().Opens; got != 1 {
		t.Fatalf("store Opens = %d, want 1", got)
	}
}

func TestModel_PressOnStatusBarWhileFullscreenIsIgnored(t *testing.T) {
	m, clock, _ := newTestModel(t, true)
	m = step(t, m, press(5, 5))
	m = settle(t, m, clock)

	m = step(t, m, press(5, 20))
	if got := m.Machine().State().Phase; got != reveal.FullscreenOpen {
		t.Fatalf("phase = %s, want fullscreen", got)
	}
}

func TestModel_EscapeCloses(t *testing.T) {
	m, clock, _ := newTestModel(t, true)
	m = step(t, m, press(5, 5))
	m = settle(t, m, clock)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Machine().State().Phase; got != reveal.Shrinking {
		t.Fatalf("phase after esc = %s, want shrinking", got)
	}
}

func TestModel_KeyboardFocusPreviewsAndOpens(t *testing.T) {
	m, clock, _ := newTestModel(t, true)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.focus != 1 {
		t.Fatalf("focus = %d, want 1", m.focus)
	}
	if got := m.Machine().State().Current; got != "tide" {
		t.Fatalf("current = %q, want tide", got)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.focus != 3 {
		t.Fatalf("focus after wrap = %d, want 3", m.focus)
	}

	m = settle(t, m, clock)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Machine().State().Opened; got != "ember" {
		t.Fatalf("opened = %q, want ember", got)
	}
}

func TestModel_HelpAndTheme(t *testing.T) {
	m, _, _ := newTestModel(t, true)

	m = step(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}

	m = step(t, m, runes("?"))
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	if view := m.View(); !strings.Contains(view, "Cycle theme") {
		t.Fatalf("help view missing bindings:\n%s", view)
	}
	m = step(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if !quits(cmd) {
		t.Fatalf("q did not quit")
	}
}

func quits(cmd tea.Cmd) bool {
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil && quits(c) {
				return true
			}
		}
	}
	return false
}

func TestModel_ResizeReclipsHoveredSlice(t *testing.T) {
	m, clock, _ := newTestModel(t, true)
	m = step(t, m, motion(30, 5))
	m = settle(t, m, clock)

	m = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 11})
	h := m.Machine().Portal().Current()
	if h == nil {
		t.Fatalf("no current holder")
	}
	// 40 cells over four slices: tide covers [10,20).
	if h.Bounds.Left != 10 || h.Bounds.Right != 20 {
		t.Fatalf("bounds after resize = %+v, want {10 20}", h.Bounds)
	}
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := New(Options{Config: config.Demo(), Content: content.NewRegistry(nil)})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before size = %q", got)
	}
}
