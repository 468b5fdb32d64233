package lines

import (
	"github.com/lixenwraith/loom/span"
)

// SimpleRow is one visual line of plain text: byte offsets into the
// parent string, display width, and the wrap flag. No style, since all
// content shares one.
type SimpleRow struct {
	Start     int // Beginning of the row in the parent string
	End       int // End of the row (excluded)
	Width     int // Display width in cells
	IsWrapped bool
}

// Shift moves the row offsets by delta, for rows computed on a substring
func (r SimpleRow) Shift(delta int) SimpleRow {
	r.Start += delta
	r.End += delta
	return r
}

// SimpleIterator wraps plain text at the target width. It is a thin
// specialization of LinesIterator over a single unstyled synthetic span.
type SimpleIterator struct {
	iter *LinesIterator
}

// NewSimpleIterator creates an iterator over plain text with the given
// target width
func NewSimpleIterator(content string, width int) *SimpleIterator {
	return &SimpleIterator{iter: NewLinesIterator(span.Plain(content), width)}
}

// ShowSpaces keeps a blank cell at the end of rows, see
// LinesIterator.ShowSpaces
func (it *SimpleIterator) ShowSpaces() *SimpleIterator {
	it.iter.ShowSpaces()
	return it
}

// Next produces the next row, or false when the text is exhausted
func (it *SimpleIterator) Next() (SimpleRow, bool) {
	row, ok := it.iter.Next()
	if !ok {
		return SimpleRow{}, false
	}
	out := SimpleRow{Width: row.Width, IsWrapped: row.IsWrapped}
	if len(row.Segments) > 0 {
		// The single span covers the whole text, so span-relative
		// offsets are source offsets.
		out.Start = row.Segments[0].Start
		out.End = row.Segments[len(row.Segments)-1].End
	}
	return out, true
}
