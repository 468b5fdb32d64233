package lines

import (
	"github.com/lixenwraith/loom/span"
	"github.com/lixenwraith/loom/style"
)

// Segment refers to a part of one span: byte offsets are relative to the
// span content, not the source string. Segments never own text; they are
// resolved against the source on demand.
type Segment struct {
	Span  int // Index into the source span table
	Start int // Beginning within the span content (included)
	End   int // End within the span content (excluded)
	Width int // Display width in cells
}

// ResolveText returns the text slice this segment covers
func (s Segment) ResolveText(source span.StyledText) string {
	return source.SpanContent(s.Span)[s.Start:s.End]
}

// Resolve returns the text slice, the span style, and the display width
func (s Segment) Resolve(source span.StyledText) (string, style.Style, int) {
	return s.ResolveText(source), source.Spans()[s.Span].Style, s.Width
}

// Len returns the segment length in bytes
func (s Segment) Len() int {
	return s.End - s.Start
}
