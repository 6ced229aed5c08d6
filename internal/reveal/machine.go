package reveal

import (
	"log/slog"
	"time"

	"github.com/five82/slicer/internal/clip"
	"github.com/five82/slicer/internal/content"
	"github.com/five82/slicer/internal/geometry"
	"github.com/five82/slicer/internal/holder"
	"github.com/five82/slicer/internal/portal"
	"github.com/five82/slicer/internal/transition"
)

// DefaultLeaveDelay debounces hover-leave.
const DefaultLeaveDelay = 50 * time.Millisecond

// Slice is one grid column bound to a content identifier.
type Slice struct {
	Key       string
	ContentID string
	Label     string
}

// NewSlices builds one slice per source entry, in order.
func NewSlices(refs []content.Ref) []Slice {
	slices := make([]Slice, len(refs))
	for i, r := range refs {
		slices[i] = Slice{Key: r.ID, ContentID: r.ID, Label: r.LabelAt(i)}
	}
	return slices
}

// Layout reports where slices and the surface currently are.
type Layout interface {
	SliceRect(i int) geometry.Rect
	SurfaceRect() geometry.Rect
}

// Timer is an owned handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback, reporting whether it was still pending.
	Stop() bool
}

// Scheduler runs fn after d on the machine's goroutine.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// Options configure a Machine.
type Options struct {
	Slices    []Slice
	Layout    Layout
	Cache     *holder.Cache
	Engine    *transition.Engine
	Scheduler Scheduler
	// Now defaults to time.Now.
	Now        func() time.Time
	Logger     *slog.Logger
	LeaveDelay time.Duration
	CloseMode  CloseMode
	// OnChange, when set, is called with the new state after every handler.
	OnChange func(State)
}

// Machine sequences hover, click and keyboard input into clip transitions.
// All methods must be called from one goroutine; transition completions are
// delivered through Advance on that same goroutine.
type Machine struct {
	slices     []Slice
	layout     Layout
	cache      *holder.Cache
	engine     *transition.Engine
	sched      Scheduler
	now        func() time.Time
	log        *slog.Logger
	leaveDelay time.Duration
	closeMode  CloseMode
	onChange   func(State)

	portal  portal.Portal
	phases  map[*holder.Holder]Phase
	hovered int
	leave   Timer

	// animating is the admission guard. It is set when a click starts an
	// open or close sequence and cleared only when the last phase of that
	// sequence completes.
	animating bool
}

// New returns a machine in the Idle state. Call Start for the default reveal.
func New(opts Options) *Machine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	delay := opts.LeaveDelay
	if delay <= 0 {
		delay = DefaultLeaveDelay
	}
	engine := opts.Engine
	if engine == nil {
		engine = transition.New(transition.DefaultDuration, clip.Ease)
	}
	return &Machine{
		slices:     opts.Slices,
		layout:     opts.Layout,
		cache:      opts.Cache,
		engine:     engine,
		sched:      opts.Scheduler,
		now:        now,
		log:        logger,
		leaveDelay: delay,
		closeMode:  opts.CloseMode,
		onChange:   opts.OnChange,
		phases:     make(map[*holder.Holder]Phase),
		hovered:    -1,
	}
}

// Start eagerly reveals the first slice.
func (m *Machine) Start() {
	if len(m.slices) > 0 {
		if h, ok := m.holderAt(0); ok {
			m.reveal(0, h)
		}
	}
	m.changed()
}

// HoverEnter handles the pointer entering slice i.
func (m *Machine) HoverEnter(i int) {
	if !m.valid(i) {
		return
	}
	m.hovered = i
	if m.portal.Opened() != nil || m.animating {
		m.log.Debug("hover dropped", "slice", i, "animating", m.animating)
		return
	}
	h, ok := m.holderAt(i)
	if !ok {
		return
	}
	m.cancelLeave()
	m.reveal(i, h)
	m.changed()
}

// HoverLeave handles the pointer leaving the hovered slice. The slide-out
// starts after the leave delay unless another hover-enter arrives first.
func (m *Machine) HoverLeave() {
	m.hovered = -1
	if m.portal.Opened() != nil || m.portal.Current() == nil || m.animating {
		return
	}
	m.cancelLeave()
	if m.sched == nil {
		m.leaveNow()
		return
	}
	m.leave = m.sched.After(m.leaveDelay, func() {
		m.leave = nil
		m.leaveNow()
	})
}

// Click toggles fullscreen for slice i.
func (m *Machine) Click(i int) {
	if !m.valid(i) {
		return
	}
	if m.animating {
		m.log.Debug("click dropped", "slice", i)
		return
	}
	opened := m.portal.Opened()
	switch {
	case opened == nil:
		m.open(i)
	case opened.ID == m.slices[i].ContentID:
		m.close()
	default:
		// The grid is covered while fullscreen; another slice cannot be
		// targeted until the open one is closed.
		m.log.Debug("click on covered slice ignored", "slice", i, "opened", opened.ID)
	}
	m.changed()
}

// Escape closes the fullscreen holder, if any.
func (m *Machine) Escape() {
	m.dismiss("escape")
}

// OutsideClick closes the fullscreen holder, if any.
func (m *Machine) OutsideClick() {
	m.dismiss("outside-click")
}

// Resize re-applies the clip of the current holder against the hovered
// slice. It only acts while the current holder is previewing that slice;
// fullscreen and idle are left alone.
func (m *Machine) Resize(hovered int) {
	if !m.valid(hovered) {
		m.hovered = -1
		return
	}
	m.hovered = hovered
	h := m.portal.Current()
	if m.animating || m.portal.Opened() != nil || h == nil {
		return
	}
	if m.slices[hovered].ContentID != h.ID {
		return
	}
	bounds := m.resolve(hovered)
	switch m.phases[h] {
	case Previewing:
		h.Bounds = bounds
		h.Clip = clip.Slice(bounds)
		m.engine.Snap(h.ID, h.Clip)
	case RevealingIn:
		h.Bounds = bounds
		h.Clip = clip.Slice(bounds)
		m.engine.Retarget(h.ID, h.Clip, m.now(), m.settle(h))
	}
	m.changed()
}

// Advance delivers transition completions due at now.
func (m *Machine) Advance(now time.Time) {
	if m.engine.Advance(now) > 0 {
		m.changed()
	}
}

// Active reports whether a transition is running and frames are needed.
func (m *Machine) Active() bool {
	return m.engine.Active()
}

// Animating reports whether the admission guard is set.
func (m *Machine) Animating() bool {
	return m.animating
}

// Hovered returns the slice under the pointer, or -1.
func (m *Machine) Hovered() int {
	return m.hovered
}

// Slices returns the grid slices.
func (m *Machine) Slices() []Slice {
	return m.slices
}

// Portal exposes the mounting surface for rendering.
func (m *Machine) Portal() *portal.Portal {
	return &m.portal
}

// ClipAt returns the animated clip of h at now.
func (m *Machine) ClipAt(h *holder.Holder, now time.Time) clip.Region {
	if r, ok := m.engine.Value(h.ID, now); ok {
		return r
	}
	return h.Clip
}

func (m *Machine) valid(i int) bool {
	return i >= 0 && i < len(m.slices)
}

func (m *Machine) resolve(i int) geometry.Insets {
	if m.layout == nil {
		return geometry.Insets{}
	}
	slice, surface := m.layout.SliceRect(i), m.layout.SurfaceRect()
	if slice.Empty() || surface.Empty() {
		m.log.Debug("geometry unavailable", "slice", i)
	}
	return geometry.Resolve(slice, surface)
}

func (m *Machine) setPhase(h *holder.Holder, p Phase) {
	m.log.Debug("phase", "holder", h.ID, "from", m.phases[h].String(), "to", p.String(), "clip", h.Clip.String())
	if p == Idle {
		delete(m.phases, h)
		return
	}
	m.phases[h] = p
}

// reveal mounts the holder for slice i and slides it in, sending any other
// current holder out.
// holderAt returns the holder for slice i; missing content is logged and
// the interaction ignored.
func (m *Machine) holderAt(i int) (*holder.Holder, bool) {
	h, ok := m.cache.Get(m.slices[i].ContentID)
	if !ok {
		m.log.Debug("content not found", "slice", i, "content", m.slices[i].ContentID)
	}
	return h, ok
}

func (m *Machine) reveal(i int, h *holder.Holder) {
	bounds := m.resolve(i)
	cur := m.portal.Current()

	if cur == h {
		h.Bounds = bounds
		h.Clip = clip.Slice(bounds)
		switch m.phases[h] {
		case RevealingIn, RevealingOut:
			// Keep moving from where it is; the pending slide-out (if
			// any) is superseded and will not unmount h.
			m.setPhase(h, RevealingIn)
			m.engine.Retarget(h.ID, h.Clip, m.now(), m.settle(h))
		default:
			m.engine.Snap(h.ID, h.Clip)
			m.setPhase(h, Previewing)
		}
		return
	}

	if cur != nil {
		m.slideOut(cur)
	}
	m.portal.Mount(h)
	m.portal.SetCurrent(h)
	m.slideIn(h, bounds)
}

func (m *Machine) slideIn(h *holder.Holder, bounds geometry.Insets) {
	h.Bounds = bounds
	h.Clip = clip.Slice(bounds)
	m.setPhase(h, RevealingIn)
	m.engine.Start(h.ID, clip.Below(bounds), h.Clip, m.now(), m.settle(h))
}

func (m *Machine) settle(h *holder.Holder) func() {
	return func() { m.setPhase(h, Previewing) }
}

// slideOut sends h out through the top and unmounts it on completion. It is
// fire-and-forget: a later transition on h cancels the unmount.
func (m *Machine) slideOut(h *holder.Holder) {
	h.Clip = clip.Above(h.Bounds)
	m.setPhase(h, RevealingOut)
	m.engine.Retarget(h.ID, h.Clip, m.now(), func() {
		m.unmount(h)
	})
}

func (m *Machine) unmount(h *holder.Holder) {
	m.portal.Unmount(h)
	if m.portal.Current() == h {
		m.portal.SetCurrent(nil)
	}
	m.setPhase(h, Idle)
}

func (m *Machine) leaveNow() {
	h := m.portal.Current()
	if m.portal.Opened() != nil || m.animating || h == nil {
		return
	}
	if m.phases[h] == RevealingOut {
		return
	}
	m.slideOut(h)
	m.changed()
}

func (m *Machine) cancelLeave() {
	if m.leave != nil {
		m.leave.Stop()
		m.leave = nil
	}
}

func (m *Machine) open(i int) {
	h, ok := m.holderAt(i)
	if !ok {
		return
	}
	m.animating = true
	m.cancelLeave()

	bounds := m.resolve(i)
	if cur := m.portal.Current(); cur != h {
		if cur != nil {
			m.slideOut(cur)
		}
		m.portal.Mount(h)
		m.portal.SetCurrent(h)
	}

	h.Bounds = bounds
	h.Original = bounds
	m.engine.Snap(h.ID, clip.Slice(bounds))
	h.Clip = clip.Full()
	m.setPhase(h, Expanding)
	m.portal.SetOpened(h)
	m.portal.OnTop = true

	m.log.Info("open", "content", h.ID, "from", clip.Slice(bounds).String())
	m.engine.Start(h.ID, clip.Slice(bounds), h.Clip, m.now(), func() {
		m.setPhase(h, FullscreenOpen)
		m.portal.GridHidden = true
		m.animating = false
	})
}

func (m *Machine) close() {
	h := m.portal.Opened()
	m.animating = true
	m.portal.SetOpened(nil)

	back := clip.Slice(h.Original)
	h.Bounds = h.Original
	h.Clip = back
	m.setPhase(h, Shrinking)

	m.log.Info("close", "content", h.ID, "to", back.String(), "mode", m.closeMode.String())
	m.engine.Retarget(h.ID, back, m.now(), func() {
		m.portal.OnTop = false
		m.portal.GridHidden = false
		if m.closeMode == CloseStay {
			m.setPhase(h, Previewing)
			m.animating = false
			return
		}
		h.Clip = clip.Above(h.Original)
		m.setPhase(h, ShrinkingOut)
		m.engine.Start(h.ID, back, h.Clip, m.now(), func() {
			m.unmount(h)
			m.animating = false
		})
	})
}

func (m *Machine) dismiss(reason string) {
	opened := m.portal.Opened()
	if opened == nil {
		return
	}
	if m.animating {
		m.log.Debug("dismiss dropped", "reason", reason)
		return
	}
	m.log.Debug("dismiss", "reason", reason, "content", opened.ID)
	m.close()
	m.changed()
}

func (m *Machine) changed() {
	if m.onChange != nil {
		m.onChange(m.State())
	}
}
