package reveal

import (
	"fmt"
	"strings"
)

// Phase is the animation state of a holder.
type Phase int

const (
	Idle Phase = iota
	Previewing
	RevealingIn
	RevealingOut
	Expanding
	FullscreenOpen
	Shrinking
	ShrinkingOut
)

var phaseNames = [...]string{
	Idle:           "idle",
	Previewing:     "previewing",
	RevealingIn:    "revealing-in",
	RevealingOut:   "revealing-out",
	Expanding:      "expanding",
	FullscreenOpen: "fullscreen",
	Shrinking:      "shrinking",
	ShrinkingOut:   "shrinking-out",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Transient reports whether the phase is mid-transition.
func (p Phase) Transient() bool {
	switch p {
	case Idle, Previewing, FullscreenOpen:
		return false
	default:
		return true
	}
}

// CloseMode selects how a fullscreen holder is dismissed.
type CloseMode int

const (
	// CloseSlideOut shrinks back to the column and then slides the holder
	// out through the top, ending idle.
	CloseSlideOut CloseMode = iota
	// CloseStay shrinks back to the column and keeps previewing it.
	CloseStay
)

func (c CloseMode) String() string {
	if c == CloseStay {
		return "stay"
	}
	return "slide-out"
}

// ParseCloseMode accepts "slide-out" (the default for an empty string) or
// "stay".
func ParseCloseMode(s string) (CloseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "slide-out":
		return CloseSlideOut, nil
	case "stay":
		return CloseStay, nil
	default:
		return CloseSlideOut, fmt.Errorf("unknown close mode %q", s)
	}
}
