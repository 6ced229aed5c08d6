package reveal

// State is a read-only summary of the machine, for rendering and tests.
type State struct {
	// Phase is the phase of the current holder, or Idle.
	Phase     Phase
	Current   string
	Opened    string
	Animating bool
	// Mounted lists mounted holder ids bottom to top.
	Mounted []string
	// Phases maps every mounted holder id to its phase.
	Phases     map[string]Phase
	GridHidden bool
	Fullscreen bool
	Hovered    int
	// Holders counts holders created so far.
	Holders int
}

// Settled counts mounted holders whose clip is not transitioning.
func (s State) Settled() int {
	n := 0
	for _, id := range s.Mounted {
		if !s.Phases[id].Transient() {
			n++
		}
	}
	return n
}

// State summarises the machine.
func (m *Machine) State() State {
	s := State{
		Animating:  m.animating,
		GridHidden: m.portal.GridHidden,
		Fullscreen: m.portal.OnTop,
		Hovered:    m.hovered,
		Holders:    m.cache.Len(),
		Phases:     make(map[string]Phase),
	}
	if cur := m.portal.Current(); cur != nil {
		s.Current = cur.ID
		s.Phase = m.phases[cur]
	}
	if op := m.portal.Opened(); op != nil {
		s.Opened = op.ID
	}
	for _, h := range m.portal.Mounted() {
		s.Mounted = append(s.Mounted, h.ID)
		s.Phases[h.ID] = m.phases[h]
	}
	return s
}
