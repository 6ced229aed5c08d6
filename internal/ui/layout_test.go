package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/slicer/internal/geometry"
)

func TestGridLayout_Resize(t *testing.T) {
	l := newGridLayout(4)
	l.resize(80, 21)

	if got := l.SurfaceRect(); got != (geometry.Rect{W: 80, H: 20}) {
		t.Fatalf("SurfaceRect = %+v", got)
	}
	if got := l.SliceRect(1); got != (geometry.Rect{X: 20, W: 20, H: 20}) {
		t.Fatalf("SliceRect(1) = %+v", got)
	}
	if got := l.SliceRect(9); !got.Empty() {
		t.Fatalf("SliceRect(9) = %+v, want empty", got)
	}
	if diff := cmp.Diff([]int{20, 40, 60}, l.boundaries()); diff != "" {
		t.Fatalf("boundaries (-want +got):\n%s", diff)
	}
}

func TestGridLayout_Hit(t *testing.T) {
	l := newGridLayout(3)
	l.resize(10, 6)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{2, 4, 0},
		{3, 0, 1},
		{6, 1, 2},
		{9, 4, 2},
		{5, 5, -1}, // status row
		{10, 0, -1},
	}
	for _, tt := range tests {
		if got := l.hit(tt.x, tt.y); got != tt.want {
			t.Fatalf("hit(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if diff := cmp.Diff([]int{3, 6}, l.boundaries()); diff != "" {
		t.Fatalf("boundaries (-want +got):\n%s", diff)
	}
}

func TestGridLayout_TooShort(t *testing.T) {
	l := newGridLayout(2)
	l.resize(10, 1)
	if l.hit(1, 0) != -1 {
		t.Fatalf("hit on a zero-height surface should miss")
	}
}
