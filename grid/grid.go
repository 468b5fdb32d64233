// Package grid provides the character-grid drawing surface: a cell
// buffer and clipped rectangular regions over it. All drawing is
// runewidth-aware; wide runes occupy two cells.
package grid

import (
	"github.com/lixenwraith/loom/style"
)

// Cell is a single character cell
type Cell struct {
	Rune  rune
	Style style.Style
}

// Buffer is a 2D grid of cells in row-major order
type Buffer struct {
	cells []Cell
	w, h  int
}

// NewBuffer creates a buffer of the given dimensions, filled with spaces
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{cells: make([]Cell, w*h), w: w, h: h}
	b.Clear()
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int { return b.w }

// Height returns the buffer height
func (b *Buffer) Height() int { return b.h }

// Clear resets every cell to a space with the zero style
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
}

// Resize reallocates the buffer for new dimensions, clearing content
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.w, b.h = w, h
	b.cells = make([]Cell, w*h)
	b.Clear()
}

// Get returns the cell at (x, y), false if out of bounds
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return Cell{}, false
	}
	return b.cells[y*b.w+x], true
}

// Root returns a region covering the whole buffer
func (b *Buffer) Root() Region {
	return Region{buf: b, w: b.w, h: b.h}
}
