package clip

import (
	"fmt"
	"math"
	"strings"
)

// Easing is a cubic Bézier timing function with fixed end points (0,0) and
// (1,1), the same family CSS transitions use.
type Easing struct {
	Name           string
	x1, y1, x2, y2 float64
}

var easings = map[string]Easing{
	"linear":      {Name: "linear", x1: 0, y1: 0, x2: 1, y2: 1},
	"ease":        {Name: "ease", x1: 0.25, y1: 0.1, x2: 0.25, y2: 1},
	"ease-in":     {Name: "ease-in", x1: 0.42, y1: 0, x2: 1, y2: 1},
	"ease-out":    {Name: "ease-out", x1: 0, y1: 0, x2: 0.58, y2: 1},
	"ease-in-out": {Name: "ease-in-out", x1: 0.42, y1: 0, x2: 0.58, y2: 1},
}

// Ease is the default timing function.
var Ease = easings["ease"]

// ParseEasing looks up a named timing function.
func ParseEasing(name string) (Easing, error) {
	e, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Easing{}, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}

// At maps linear progress p in [0,1] to eased progress.
func (e Easing) At(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if e.x1 == e.y1 && e.x2 == e.y2 {
		return p
	}
	return bezier(e.solveX(p), e.y1, e.y2)
}

// solveX finds the curve parameter whose x coordinate is p.
func (e Easing) solveX(p float64) float64 {
	t := p
	for range 8 {
		x := bezier(t, e.x1, e.x2) - p
		if math.Abs(x) < 1e-6 {
			return t
		}
		d := bezierSlope(t, e.x1, e.x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= x / d
	}

	lo, hi := 0.0, 1.0
	t = p
	for range 32 {
		x := bezier(t, e.x1, e.x2)
		if math.Abs(x-p) < 1e-6 {
			break
		}
		if x < p {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}
