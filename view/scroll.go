package view

// ViewportScroll manages row-based scroll for content taller than its
// viewport
type ViewportScroll struct {
	Offset    int // Row offset from top of content
	ContentH  int // Total content height in rows
	ViewportH int // Visible viewport height
}

// SetDimensions updates content and viewport heights, clamps offset
func (v *ViewportScroll) SetDimensions(contentH, viewportH int) {
	v.ContentH = contentH
	v.ViewportH = viewportH
	v.clamp()
}

// MaxOffset returns the maximum valid scroll offset
func (v *ViewportScroll) MaxOffset() int {
	maxOffset := v.ContentH - v.ViewportH
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// CanScroll returns true if content exceeds the viewport
func (v *ViewportScroll) CanScroll() bool {
	return v.ContentH > v.ViewportH
}

// ScrollBy adjusts offset by delta
func (v *ViewportScroll) ScrollBy(delta int) {
	v.Offset += delta
	v.clamp()
}

// ScrollTo sets the absolute offset
func (v *ViewportScroll) ScrollTo(pos int) {
	v.Offset = pos
	v.clamp()
}

// PageUp scrolls up by the viewport height
func (v *ViewportScroll) PageUp() {
	v.ScrollBy(-v.ViewportH)
}

// PageDown scrolls down by the viewport height
func (v *ViewportScroll) PageDown() {
	v.ScrollBy(v.ViewportH)
}

// Home scrolls to the top
func (v *ViewportScroll) Home() {
	v.Offset = 0
}

// End scrolls to the bottom
func (v *ViewportScroll) End() {
	v.Offset = v.MaxOffset()
}

func (v *ViewportScroll) clamp() {
	if v.Offset > v.MaxOffset() {
		v.Offset = v.MaxOffset()
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
