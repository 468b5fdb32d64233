package grid

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/loom/lines"
	"github.com/lixenwraith/loom/style"
)

// Region is a rectangular window into a buffer. All coordinates are
// relative to the region's origin; drawing clips to its bounds.
type Region struct {
	buf  *Buffer
	x, y int // Absolute position in the buffer
	w, h int // Region dimensions
}

// Width returns the region width
func (r Region) Width() int { return r.w }

// Height returns the region height
func (r Region) Height() int { return r.h }

// Sub returns a nested region, clipped to the parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.w {
		w = r.w - x
	}
	if y+h > r.h {
		h = r.h - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{buf: r.buf, x: r.x + x, y: r.y + y, w: w, h: h}
}

// Inset returns the region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.w-2*n, r.h-2*n)
}

// SetCell writes a single cell with bounds checking
func (r Region) SetCell(x, y int, ch rune, st style.Style) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	absX := r.x + x
	absY := r.y + y
	if uint(absX) >= uint(r.buf.w) {
		return
	}
	idx := absY*r.buf.w + absX
	if uint(idx) < uint(len(r.buf.cells)) {
		r.buf.cells[idx] = Cell{Rune: ch, Style: st}
	}
}

// Fill fills the region with a single styled rune
func (r Region) Fill(ch rune, st style.Style) {
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			r.SetCell(x, y, ch, st)
		}
	}
}

// Clear fills the region with spaces and the zero style
func (r Region) Clear() {
	r.Fill(' ', style.None())
}

// Print draws a string starting at (x, y) and returns the x position
// after the last drawn cell. Wide runes occupy two cells; the trailing
// cell is blanked. Zero-width runes are skipped.
func (r Region) Print(x, y int, s string, st style.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.SetCell(x, y, ch, st)
		if w == 2 {
			r.SetCell(x+1, y, ' ', st)
		}
		x += w
	}
	return x
}

// PrintRow draws resolved row spans left to right starting at (x, y)
func (r Region) PrintRow(x, y int, spans []lines.ResolvedSpan) {
	for _, sp := range spans {
		x = r.Print(x, y, sp.Text, sp.Style)
	}
}
