// Package span models styled source text: an immutable string paired with
// an ordered table of non-overlapping spans, each tagged with a style.
// Concatenating all span contents reconstructs the logical text.
package span

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/loom/style"
)

// Span names a byte range of the source text (or an owned fragment for
// synthesized content) plus the style applied to it
type Span struct {
	Start, End int    // Byte range into the source, used when Owned is false
	Text       string // Owned fragment, used when Owned is true
	Owned      bool
	Style      style.Style
}

// Content resolves the span against its source text
func (s Span) Content(source string) string {
	if s.Owned {
		return s.Text
	}
	return source[s.Start:s.End]
}

// Len returns the content length in bytes
func (s Span) Len() int {
	if s.Owned {
		return len(s.Text)
	}
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero-length content
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// StyledText is an immutable string with an ordered span table.
// The zero value is an empty text.
type StyledText struct {
	source string
	spans  []Span
}

// Plain builds a styled text with a single unstyled span
func Plain(s string) StyledText {
	return Styled(s, style.None())
}

// Styled builds a styled text with a single span of uniform style
func Styled(s string, st style.Style) StyledText {
	if len(s) == 0 {
		return StyledText{}
	}
	return StyledText{
		source: s,
		spans:  []Span{{Start: 0, End: len(s), Style: st}},
	}
}

// New builds a styled text from an existing source and span table.
// Spans must be non-overlapping and in reading order; this is a caller
// contract, not validated at runtime.
func New(source string, spans []Span) StyledText {
	return StyledText{source: source, spans: spans}
}

// Source returns the underlying source text
func (t StyledText) Source() string {
	return t.source
}

// Spans returns the span table
func (t StyledText) Spans() []Span {
	return t.spans
}

// SpanContent resolves span i against the source
func (t StyledText) SpanContent(i int) string {
	return t.spans[i].Content(t.source)
}

// Logical returns the concatenation of all span contents
func (t StyledText) Logical() string {
	out := make([]byte, 0, len(t.source))
	for _, s := range t.spans {
		out = append(out, s.Content(t.source)...)
	}
	return string(out)
}

// Width returns the display width of the logical text in cells
func (t StyledText) Width() int {
	w := 0
	for _, s := range t.spans {
		w += runewidth.StringWidth(s.Content(t.source))
	}
	return w
}

// IsEmpty returns true if the text has no content
func (t StyledText) IsEmpty() bool {
	for _, s := range t.spans {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// Append concatenates another styled text, shifting its borrowed spans
// onto the combined source
func (t StyledText) Append(o StyledText) StyledText {
	offset := len(t.source)
	spans := make([]Span, 0, len(t.spans)+len(o.spans))
	spans = append(spans, t.spans...)
	for _, s := range o.spans {
		if !s.Owned {
			s.Start += offset
			s.End += offset
		}
		spans = append(spans, s)
	}
	return StyledText{source: t.source + o.source, spans: spans}
}

// AppendPlain appends an unstyled string
func (t StyledText) AppendPlain(s string) StyledText {
	return t.Append(Plain(s))
}

// AppendStyled appends a string with a uniform style
func (t StyledText) AppendStyled(s string, st style.Style) StyledText {
	return t.Append(Styled(s, st))
}
