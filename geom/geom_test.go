package geom

import (
	"testing"
)

func TestVecOps(t *testing.T) {
	a := V(3, 7)
	b := V(5, 2)

	if got := a.Add(b); got != V(8, 9) {
		t.Errorf("Add: expected (8,9), got %v", got)
	}
	// Sub clamps at zero per component.
	if got := a.Sub(b); got != V(0, 5) {
		t.Errorf("Sub: expected (0,5), got %v", got)
	}
	if got := a.Min(b); got != V(3, 2) {
		t.Errorf("Min: expected (3,2), got %v", got)
	}
	if got := a.Max(b); got != V(5, 7) {
		t.Errorf("Max: expected (5,7), got %v", got)
	}
}

func TestVecFits(t *testing.T) {
	if !V(3, 2).Fits(V(3, 5)) {
		t.Error("(3,2) fits (3,5)")
	}
	if V(4, 2).Fits(V(3, 5)) {
		t.Error("(4,2) must not fit (3,5)")
	}
	if !V(0, 0).IsZero() {
		t.Error("zero vec must report IsZero")
	}
	if V(1, 0).IsZero() {
		t.Error("(1,0) is not zero")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	if !r.Contains(2, 3) {
		t.Error("top-left corner is inside")
	}
	if !r.Contains(5, 4) {
		t.Error("bottom-right interior cell is inside")
	}
	if r.Contains(6, 3) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(2, 5) {
		t.Error("bottom edge is exclusive")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersect(b)
	if got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("expected 5x5 at (5,5), got %+v", got)
	}

	c := Rect{X: 20, Y: 20, Width: 5, Height: 5}
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint rectangles must intersect empty")
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 10, Height: 4}
	got := r.Inset(1)
	if got != (Rect{X: 2, Y: 2, Width: 8, Height: 2}) {
		t.Errorf("expected 8x2 at (2,2), got %+v", got)
	}
	// Over-inset clamps to empty rather than going negative.
	if got := r.Inset(3); got.Width != 4 || got.Height != 0 {
		t.Errorf("expected clamped 4x0, got %+v", got)
	}
	if r.Size() != V(10, 4) {
		t.Errorf("Size: expected (10,4), got %v", r.Size())
	}
}
