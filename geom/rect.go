package geom

// Rect represents a rectangular target region
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Size returns the rectangle dimensions as a Vec
func (r Rect) Size() Vec {
	return Vec{X: r.Width, Y: r.Height}
}

// Contains returns true if the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of two rectangles, empty if disjoint
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x || y2 <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Inset returns the rectangle shrunk by n cells on all sides
func (r Rect) Inset(n int) Rect {
	w := r.Width - 2*n
	h := r.Height - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + n, Y: r.Y + n, Width: w, Height: h}
}

// IsEmpty returns true if the rectangle covers no cells
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
