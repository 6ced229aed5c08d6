package clip

import (
	"fmt"
	"math"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/five82/slicer/internal/geometry"
)

// Region is a four-edge inset defining the visible part of a holder. Top and
// Bottom are percentages of the surface height; Left and Right are pixels.
type Region struct {
	Top    float64
	Right  int
	Bottom float64
	Left   int
}

// Full is the unclipped, full-surface region.
func Full() Region {
	return Region{}
}

// Slice returns the settled preview region for a slice: its horizontal span,
// no vertical cut.
func Slice(in geometry.Insets) Region {
	return Region{Left: in.Left, Right: in.Right}
}

// Below is the slide-in starting point: the slice span with everything cut
// from the top, so the content grows upward from the bottom edge.
func Below(in geometry.Insets) Region {
	return Region{Top: 100, Left: in.Left, Right: in.Right}
}

// Above is the slide-out end point: the slice span with everything cut from
// the bottom, so the content leaves through the top edge.
func Above(in geometry.Insets) Region {
	return Region{Bottom: 100, Left: in.Left, Right: in.Right}
}

// String renders the region the way a CSS clip-path inset would read.
func (r Region) String() string {
	return fmt.Sprintf("inset(%s%% %dpx %s%% %dpx)", trimFloat(r.Top), r.Right, trimFloat(r.Bottom), r.Left)
}

// Lerp interpolates between a and b. Pixel insets are rounded to whole
// pixels; t is clamped to [0, 1].
func Lerp(a, b Region, t float64) Region {
	t = math.Max(0, math.Min(1, t))
	if t == 1 {
		return b
	}
	return Region{
		Top:    a.Top + (b.Top-a.Top)*t,
		Right:  lerpInt(a.Right, b.Right, t),
		Bottom: a.Bottom + (b.Bottom-a.Bottom)*t,
		Left:   lerpInt(a.Left, b.Left, t),
	}
}

// Visible maps the region onto a surface of w×h cells. Insets that cross
// leave an empty rectangle.
func (r Region) Visible(w, h int) cellbuf.Rectangle {
	if w <= 0 || h <= 0 {
		return cellbuf.Rectangle{}
	}
	return cellbuf.Rectangle{
		Min: cellbuf.Pos(
			clampInt(r.Left, 0, w),
			clampInt(int(math.Round(float64(h)*r.Top/100)), 0, h),
		),
		Max: cellbuf.Pos(
			clampInt(w-r.Right, 0, w),
			clampInt(h-int(math.Round(float64(h)*r.Bottom/100)), 0, h),
		),
	}
}

func lerpInt(a, b int, t float64) int {
	return int(math.Round(float64(a) + float64(b-a)*t))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.2f", v)
}
