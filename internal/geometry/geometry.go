package geometry

import "math"

// Rect is an on-screen rectangle in device pixels (terminal cells).
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area, which is what a slice
// that is not laid out yet reports.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle. The right
// and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Insets are the horizontal distances, in whole pixels, from the surface
// edges to a slice's edges.
type Insets struct {
	Left  int
	Right int
}

// Resolve computes the left/right inset that clips full-surface content to
// the horizontal span of slice. Degenerate rectangles resolve to zero insets;
// callers must not reveal against them.
func Resolve(slice, surface Rect) Insets {
	if slice.Empty() || surface.Empty() {
		return Insets{}
	}
	return Insets{
		Left:  max(0, int(math.Round(slice.Left()-surface.Left()))),
		Right: max(0, int(math.Round(surface.Right()-slice.Right()))),
	}
}

// Columns splits surface into n equal columns aligned to whole pixels.
// Column i covers [floor(i*W/n), floor((i+1)*W/n)).
func Columns(surface Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}
	cols := make([]Rect, n)
	for i := range cols {
		x0 := math.Floor(float64(i) * surface.W / float64(n))
		x1 := math.Floor(float64(i+1) * surface.W / float64(n))
		cols[i] = Rect{X: surface.X + x0, Y: surface.Y, W: x1 - x0, H: surface.H}
	}
	return cols
}

// HitTest returns the index of the column containing the point, or -1.
func HitTest(cols []Rect, x, y float64) int {
	for i, c := range cols {
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}
