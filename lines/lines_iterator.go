package lines

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/loom/span"
)

// LinesIterator greedily packs chunks into rows of at most the target
// width. Lazy, forward-only, non-restartable. Total over well-formed
// input: it always terminates, force-splitting chunks wider than the
// target at grapheme boundaries.
type LinesIterator struct {
	source span.StyledText
	chunks *chunkPeeker

	// Target width; rows never exceed it except when a single grapheme
	// alone is wider (forward-progress guarantee)
	width int

	// How far into the current (oversized) chunk previous rows reached
	offset chunkPart

	// Keep a blank cell at the end of rows instead of trimming the
	// wrap-point space
	showSpaces bool

	lastHard    bool // Last emitted row ended at a hard stop
	tailEmitted bool // The trailing empty row was already produced
}

// NewLinesIterator creates an iterator over the styled text with the
// given target width
func NewLinesIterator(source span.StyledText, width int) *LinesIterator {
	return &LinesIterator{
		source: source,
		chunks: &chunkPeeker{it: NewChunkIterator(source)},
		width:  width,
	}
}

// ShowSpaces keeps a blank cell at the end of rows where a whitespace or
// newline was consumed, unless a word had to be force-split
func (m *LinesIterator) ShowSpaces() *LinesIterator {
	m.showSpaces = true
	return m
}

// Next produces the next row, or false when the text is exhausted
func (m *LinesIterator) Next() (Row, bool) {
	allowed := m.width
	if m.showSpaces && allowed > 0 {
		// Reserve the trailing blank cell for regular rows. Force-split
		// rows below still use the full width.
		allowed--
	}

	chunks := prefix(m.chunks, allowed, &m.offset)

	if len(chunks) == 0 {
		cur := m.chunks.peek()
		if cur == nil {
			return m.finish()
		}

		// Nothing fit: the next chunk alone exceeds the width. Consider
		// each of its graphemes as a chunk and take the widest fitting
		// prefix, carrying the remainder to the next row.
		rem := cur.clone()
		rem.removeFront(m.offset)
		split := splitGraphemes(rem, m.source)

		part := chunkPart{}
		chunks = prefix(&sliceStream{chunks: split}, m.width, &part)
		if len(chunks) == 0 && len(split) > 0 {
			// Not even one grapheme fits. Take one anyway: every row
			// must make progress for the iteration to terminate.
			chunks = split[:1]
		}
		if len(chunks) == 0 {
			return m.finish()
		}

		consumed := 0
		for _, c := range chunks {
			m.offset.width += c.Width
			m.offset.length += c.length()
			consumed += c.length()
		}

		if consumed >= rem.length() {
			// The remainder was consumed whole; retire the chunk so it
			// does not resurface as an empty row.
			full, _ := m.chunks.next()
			m.offset = chunkPart{}
			m.lastHard = full.HardStop
			return m.buildRow(chunks, full.HardStop), true
		}

		m.lastHard = false
		return m.buildRow(chunks, false), true
	}

	hard := chunks[len(chunks)-1].HardStop
	m.lastHard = hard
	return m.buildRow(chunks, hard), true
}

// buildRow flattens the chunks into a row with merged segments
func (m *LinesIterator) buildRow(chunks []Chunk, hard bool) Row {
	width := 0
	var segments []Segment
	for _, c := range chunks {
		width += c.Width
		segments = append(segments, c.Segments...)
	}
	return Row{
		Segments:  mergeSegments(segments),
		Width:     width,
		IsWrapped: !hard && m.chunks.peek() != nil,
	}
}

// finish ends the iteration, emitting one empty row if the text ended in
// a hard break ("a\n" wraps to ["a", ""])
func (m *LinesIterator) finish() (Row, bool) {
	if m.lastHard && !m.tailEmitted {
		m.tailEmitted = true
		return Row{Segments: m.tailSegments()}, true
	}
	return Row{}, false
}

// tailSegments positions the trailing empty row at the end of the last
// non-empty span
func (m *LinesIterator) tailSegments() []Segment {
	spans := m.source.Spans()
	for i := len(spans) - 1; i >= 0; i-- {
		if !spans[i].IsEmpty() {
			n := spans[i].Len()
			return []Segment{{Span: i, Start: n, End: n}}
		}
	}
	return nil
}

// splitGraphemes explodes a chunk into one single-segment chunk per
// grapheme cluster, used for force-splitting
func splitGraphemes(c Chunk, source span.StyledText) []Chunk {
	var out []Chunk
	for _, seg := range c.Segments {
		if seg.Len() == 0 {
			continue
		}
		offset := seg.Start
		iter := graphemes.FromString(seg.ResolveText(source))
		for iter.Next() {
			g := iter.Value()
			w := runewidth.StringWidth(g)
			out = append(out, Chunk{
				Width: w,
				Segments: []Segment{{
					Span:  seg.Span,
					Start: offset,
					End:   offset + len(g),
					Width: w,
				}},
			})
			offset += len(g)
		}
	}
	return out
}
