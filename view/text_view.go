package view

import (
	"math"

	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/grid"
	"github.com/lixenwraith/loom/layout"
	"github.com/lixenwraith/loom/lines"
	"github.com/lixenwraith/loom/span"
)

// TextView displays styled text wrapped to its assigned width. Computed
// rows are cached behind a size cache keyed on the last layout request,
// so a compatible request skips re-wrapping; content changes and
// incompatible requests invalidate the cache.
type TextView struct {
	content    span.StyledText
	wrap       bool
	showSpaces bool

	rows  []lines.Row
	width int // Desired width: full request if any row wrapped

	cache    layout.CacheXY
	hasCache bool

	scroll ViewportScroll
}

// NewTextView creates a wrapping text view over the given content
func NewTextView(content span.StyledText) *TextView {
	return &TextView{content: content, wrap: true}
}

// SetContent replaces the content and busts the layout cache
func (t *TextView) SetContent(content span.StyledText) {
	t.content = content
	t.hasCache = false
}

// Append adds more styled text to the content and busts the cache
func (t *TextView) Append(extra span.StyledText) {
	t.content = t.content.Append(extra)
	t.hasCache = false
}

// Content returns the current content
func (t *TextView) Content() span.StyledText {
	return t.content
}

// SetWrap toggles line wrapping; when disabled, rows follow hard breaks
// only
func (t *TextView) SetWrap(wrap bool) {
	if t.wrap != wrap {
		t.wrap = wrap
		t.hasCache = false
	}
}

// SetShowSpaces toggles reserving a blank cell at wrap points
func (t *TextView) SetShowSpaces(show bool) {
	if t.showSpaces != show {
		t.showSpaces = show
		t.hasCache = false
	}
}

// Rows returns the rows computed by the last layout pass
func (t *TextView) Rows() []lines.Row {
	return t.rows
}

// Scroll exposes the row-based viewport scroll state
func (t *TextView) Scroll() *ViewportScroll {
	return &t.scroll
}

// computeRows re-wraps the content unless the size cache accepts the
// request. Non-destructive with respect to the cache: only Layout
// validates it.
func (t *TextView) computeRows(size geom.Vec) {
	if !t.wrap {
		size.X = math.MaxInt
	}

	if t.hasCache && t.cache.Accept(size) {
		return
	}

	// Bust the cache completely; only a Layout call rebuilds it.
	t.hasCache = false

	if size.X == 0 {
		t.rows = nil
		t.width = 0
		return
	}

	t.rows = t.rows[:0]
	iter := lines.NewLinesIterator(t.content, size.X)
	if t.showSpaces {
		iter.ShowSpaces()
	}
	wrapped := false
	maxWidth := 0
	for {
		row, ok := iter.Next()
		if !ok {
			break
		}
		t.rows = append(t.rows, row)
		wrapped = wrapped || row.IsWrapped
		maxWidth = max(maxWidth, row.Width)
	}

	if wrapped {
		// Any wrapped row means the full width is in use.
		t.width = size.X
	} else {
		t.width = maxWidth
	}
}

// RequiredSize answers the wrapped text extent for the available space
func (t *TextView) RequiredSize(available geom.Vec) geom.Vec {
	t.computeRows(available)
	return geom.Vec{X: t.width, Y: len(t.rows)}
}

// Layout commits the assigned size and builds a fresh cache
func (t *TextView) Layout(size geom.Vec) {
	t.computeRows(size)

	mySize := geom.Vec{X: t.width, Y: len(t.rows)}
	t.cache = layout.Build(mySize, size)
	t.hasCache = true

	t.scroll.SetDimensions(len(t.rows), size.Y)
}

// NeedsRelayout reports whether the cache was invalidated
func (t *TextView) NeedsRelayout() bool {
	return !t.hasCache
}

// Draw renders the visible rows, honoring the scroll offset
func (t *TextView) Draw(rg grid.Region) {
	for y := 0; y < rg.Height(); y++ {
		i := t.scroll.Offset + y
		if i >= len(t.rows) {
			break
		}
		rg.PrintRow(0, y, t.rows[i].Resolve(t.content))
	}
}
