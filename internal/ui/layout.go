package ui

import (
	"time"

	"github.com/five82/slicer/internal/geometry"
)

// Timing constants.
const (
	// FrameInterval is the redraw period while a clip transition runs.
	FrameInterval = 16 * time.Millisecond
)

// Layout constants.
const (
	// StatusHeight is the number of rows reserved below the surface.
	StatusHeight = 1

	// LabelInset is the distance of slice labels from the surface bottom.
	LabelInset = 2
)

// gridLayout places n equal columns across the surface. The surface is the
// terminal minus the status bar; one cell is one pixel.
type gridLayout struct {
	n      int
	width  int
	height int
	cols   []geometry.Rect
}

func newGridLayout(n int) *gridLayout {
	return &gridLayout{n: n}
}

// resize recomputes the columns for a terminal of w×h cells.
func (l *gridLayout) resize(w, h int) {
	l.width = max(w, 0)
	l.height = max(h-StatusHeight, 0)
	l.cols = geometry.Columns(l.SurfaceRect(), l.n)
}

// SurfaceRect implements reveal.Layout.
func (l *gridLayout) SurfaceRect() geometry.Rect {
	return geometry.Rect{W: float64(l.width), H: float64(l.height)}
}

// SliceRect implements reveal.Layout. Unknown slices are empty.
func (l *gridLayout) SliceRect(i int) geometry.Rect {
	if i < 0 || i >= len(l.cols) {
		return geometry.Rect{}
	}
	return l.cols[i]
}

// hit returns the slice under cell (x, y), or -1.
func (l *gridLayout) hit(x, y int) int {
	return geometry.HitTest(l.cols, float64(x), float64(y))
}

// boundaries returns the x offset of every column edge between slices.
func (l *gridLayout) boundaries() []int {
	if len(l.cols) < 2 {
		return nil
	}
	xs := make([]int, 0, len(l.cols)-1)
	for _, c := range l.cols[1:] {
		xs = append(xs, int(c.X))
	}
	return xs
}
