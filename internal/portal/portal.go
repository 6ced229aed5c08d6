// Package portal is the mounting surface behind the slice grid.
package portal

import (
	"errors"
	"fmt"

	"github.com/five82/slicer/internal/holder"
)

// Portal holds the mounted holders in paint order (last is on top) along
// with the current and opened references and the surface flags the renderer
// reads.
type Portal struct {
	mounted []*holder.Holder
	current *holder.Holder
	opened  *holder.Holder

	// GridHidden hides the slice grid and its labels.
	GridHidden bool
	// OnTop marks the surface fullscreen; the portal is painted above the grid.
	OnTop bool
}

// Mount appends h on top, or raises it if it is already mounted.
func (p *Portal) Mount(h *holder.Holder) {
	p.remove(h)
	p.mounted = append(p.mounted, h)
	h.Mounted = true
}

// Unmount removes h. Unmounting a holder that is not mounted is a no-op.
func (p *Portal) Unmount(h *holder.Holder) {
	if p.remove(h) {
		h.Mounted = false
	}
}

func (p *Portal) remove(h *holder.Holder) bool {
	for i, m := range p.mounted {
		if m == h {
			p.mounted = append(p.mounted[:i], p.mounted[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether h is mounted.
func (p *Portal) Contains(h *holder.Holder) bool {
	for _, m := range p.mounted {
		if m == h {
			return true
		}
	}
	return false
}

// Mounted returns the mounted holders bottom to top. The slice is a copy.
func (p *Portal) Mounted() []*holder.Holder {
	out := make([]*holder.Holder, len(p.mounted))
	copy(out, p.mounted)
	return out
}

func (p *Portal) Current() *holder.Holder     { return p.current }
func (p *Portal) SetCurrent(h *holder.Holder) { p.current = h }
func (p *Portal) Opened() *holder.Holder      { return p.opened }
func (p *Portal) SetOpened(h *holder.Holder)  { p.opened = h }

// Check validates the membership invariants.
func (p *Portal) Check() error {
	var errs []error
	if p.opened != nil && p.current != p.opened {
		errs = append(errs, fmt.Errorf("opened holder %s is not current", p.opened.ID))
	}
	if p.opened != nil && !p.Contains(p.opened) {
		errs = append(errs, fmt.Errorf("opened holder %s is not mounted", p.opened.ID))
	}
	if p.current != nil && !p.Contains(p.current) {
		errs = append(errs, fmt.Errorf("current holder %s is not mounted", p.current.ID))
	}
	for _, m := range p.mounted {
		if !m.Mounted {
			errs = append(errs, fmt.Errorf("holder %s mounted without flag", m.ID))
		}
	}
	return errors.Join(errs...)
}
