package ui

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/colorprofile"

	"github.com/five82/slicer/internal/config"
	"github.com/five82/slicer/internal/holder"
	"github.com/five82/slicer/internal/reveal"
	"github.com/five82/slicer/internal/state"
	"github.com/five82/slicer/internal/transition"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Config  config.Config
	Content holder.Finder
	Store   *state.Store
	Logger  *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// Profile is the colour profile the surface is rendered in. Unknown
	// renders true colour.
	Profile colorprofile.Profile
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	log   *slog.Logger
	store *state.Store
	now   func() time.Time
	hover bool

	// Reveal state, shared by every copy of the model
	machine *reveal.Machine
	layout  *gridLayout
	sched   *scheduler
	paint   *painter

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// pointer is the slice under the mouse, or -1. It is reset while the
	// portal covers the grid so the next motion re-enters.
	pointer int
	// focus is the keyboard cursor, or -1.
	focus int

	framePending bool
	showHelp     bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	cfg := opts.Config

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	profile := opts.Profile
	if profile == colorprofile.Unknown {
		profile = colorprofile.TrueColor
	}

	slices := reveal.NewSlices(cfg.Sources)
	layout := newGridLayout(len(slices))
	sched := newScheduler()
	store := opts.Store

	machine := reveal.New(reveal.Options{
		Slices:     slices,
		Layout:     layout,
		Cache:      holder.NewCache(opts.Content),
		Engine:     transition.New(cfg.Duration, cfg.Easing),
		Scheduler:  sched,
		Now:        now,
		Logger:     logger,
		LeaveDelay: cfg.LeaveDelay,
		CloseMode:  cfg.CloseMode,
		OnChange: func(st reveal.State) {
			if store != nil {
				store.Update(st)
			}
		},
	})

	theme := GetTheme(cfg.Theme)
	return Model{
		log:     logger,
		store:   store,
		now:     now,
		hover:   cfg.Hover,
		machine: machine,
		layout:  layout,
		sched:   sched,
		paint:   newPainter(profile),
		theme:   theme,
		keys:    DefaultKeyMap(),
		help:    newHelp(theme),
		pointer: -1,
		focus:   -1,
	}
}

// Machine exposes the reveal machine driven by the model.
func (m Model) Machine() *reveal.Machine {
	return m.machine
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m = m.handleResize(msg.Width, msg.Height)

	case timerMsg:
		m.sched.fire(msg)

	case frameMsg:
		m.framePending = false
		m.machine.Advance(m.now())
	}

	return m.settle(cmd)
}

// settle collects scheduler ticks and keeps the frame loop running while a
// transition is in flight.
func (m Model) settle(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := m.sched.drain()
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.machine.Active() && !m.framePending {
		m.framePending = true
		cmds = append(cmds, frameCmd(FrameInterval))
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	surface := m.encode(m.compose(m.now()))
	if m.layout.height == 0 {
		return m.renderStatus()
	}
	return surface + "\n" + m.renderStatus()
}

// handleResize lays the grid out again. The first size starts the machine;
// later ones re-clip the hovered slice.
func (m Model) handleResize(w, h int) Model {
	m.width = w
	m.height = h
	m.layout.resize(w, h)
	m.help.Width = max(w-2, 0)

	if !m.ready {
		m.ready = true
		if m.hover {
			m.machine.Start()
		}
		return m
	}
	m.machine.Resize(m.machine.Hovered())
	return m
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help = newHelp(m.theme)
		m.help.Width = max(m.width-2, 0)
		m.log.Debug("theme", "name", m.theme.Name)

	case key.Matches(msg, m.keys.Escape):
		m.machine.Escape()

	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Open):
		if m.focus >= 0 {
			m.machine.Click(m.focus)
		}
	}
	return m, nil
}

// moveFocus steps the keyboard cursor and previews the focused slice.
func (m *Model) moveFocus(delta int) {
	n := len(m.machine.Slices())
	if n == 0 {
		return
	}
	switch {
	case m.focus < 0 && delta > 0:
		m.focus = 0
	case m.focus < 0:
		m.focus = n - 1
	default:
		m.focus = (m.focus + delta + n) % n
	}
	if m.hover {
		m.machine.HoverEnter(m.focus)
	}
}

// handleMouse derives hover enter/leave from motion and dispatches clicks.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.hover {
			m.pointAt(msg.X, msg.Y)
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if m.hover {
			m.pointAt(msg.X, msg.Y)
		}
		if m.machine.Portal().OnTop {
			if msg.Y < m.layout.height {
				m.machine.OutsideClick()
			}
			return m
		}
		if i := m.layout.hit(msg.X, msg.Y); i >= 0 {
			m.focus = i
			m.machine.Click(i)
		}
	}
	return m
}

func (m *Model) pointAt(x, y int) {
	i := -1
	if !m.machine.Portal().OnTop {
		i = m.layout.hit(x, y)
	}
	if i == m.pointer {
		return
	}
	if m.pointer >= 0 {
		m.machine.HoverLeave()
	}
	m.pointer = i
	if i >= 0 {
		m.machine.HoverEnter(i)
	}
}

// highlighted returns the slice drawn as active: the pointer's, else the
// keyboard focus.
func (m Model) highlighted() int {
	if m.pointer >= 0 {
		return m.pointer
	}
	return m.focus
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Profile == colorprofile.Unknown {
		opts.Profile = colorprofile.Detect(os.Stdout, os.Environ())
	}
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
