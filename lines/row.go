package lines

import (
	"github.com/lixenwraith/loom/span"
	"github.com/lixenwraith/loom/style"
)

// Row is one visual line: an ordered list of segments, the total display
// width, and whether the line was produced by wrapping (rather than by a
// hard break or the end of the text)
type Row struct {
	Segments  []Segment
	Width     int
	IsWrapped bool
}

// ResolvedSpan is a drawable slice of a row: the text, the style of the
// span it was cut from, and its display width
type ResolvedSpan struct {
	Text  string
	Style style.Style
	Width int
}

// Resolve maps the row segments back to text slices and styles.
// Zero-length segments (positions kept for empty rows) are filtered out.
// Read-only: neither the row nor the source is mutated.
func (r Row) Resolve(source span.StyledText) []ResolvedSpan {
	out := make([]ResolvedSpan, 0, len(r.Segments))
	for _, seg := range r.Segments {
		text, st, width := seg.Resolve(source)
		if text == "" {
			continue
		}
		out = append(out, ResolvedSpan{Text: text, Style: st, Width: width})
	}
	return out
}

// mergeSegments joins adjacent segments that reference the same span and
// are byte-contiguous, keeping row segment counts minimal
func mergeSegments(segments []Segment) []Segment {
	if len(segments) < 2 {
		return segments
	}
	out := segments[:1]
	for _, seg := range segments[1:] {
		last := &out[len(out)-1]
		if seg.Span == last.Span && seg.Start == last.End {
			last.End = seg.End
			last.Width += seg.Width
			continue
		}
		out = append(out, seg)
	}
	return out
}
