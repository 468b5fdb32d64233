package lines

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/loom/span"
)

// ChunkIterator lazily emits non-breakable chunks from a styled text, in
// reading order. Forward-only and non-restartable.
//
// Break opportunities follow UAX #14 line segmentation over the logical
// (concatenated) text; emitted byte ranges are mapped back onto the span
// table, so a single word straddling a style boundary yields one chunk
// with multiple segments.
type ChunkIterator struct {
	source  span.StyledText
	logical string
	offsets []int // Logical byte offset where each span content begins
	pos     int   // Consumed prefix of the logical text
	state   int   // UAX #14 segmenter state
	hint    int   // First span that may still overlap pos
}

// NewChunkIterator creates a chunk iterator over the given styled text
func NewChunkIterator(source span.StyledText) *ChunkIterator {
	spans := source.Spans()
	offsets := make([]int, len(spans))
	off := 0
	for i, s := range spans {
		offsets[i] = off
		off += s.Len()
	}
	return &ChunkIterator{
		source:  source,
		logical: source.Logical(),
		offsets: offsets,
		state:   -1,
	}
}

// Next emits the next chunk, or false when the text is exhausted
func (it *ChunkIterator) Next() (Chunk, bool) {
	if it.pos >= len(it.logical) {
		return Chunk{}, false
	}

	seg, _, _, state := uniseg.FirstLineSegmentInString(it.logical[it.pos:], it.state)
	it.state = state

	start := it.pos
	it.pos += len(seg)

	// Hard stops are detected by an explicit terminator, not by the
	// segmenter's mustBreak flag: that flag is also set at end of text.
	content, hard := trimTerminator(seg)

	segments := it.mapRange(start, start+len(content))
	width := 0
	for _, s := range segments {
		width += s.Width
	}

	return Chunk{
		Width:         width,
		Segments:      segments,
		HardStop:      hard,
		EndsWithSpace: strings.HasSuffix(content, " "),
	}, true
}

// mapRange converts a logical byte range into span-relative segments.
// An empty range still yields one degenerate segment so empty rows keep
// a position in the source.
func (it *ChunkIterator) mapRange(start, end int) []Segment {
	spans := it.source.Spans()

	// Skip spans fully consumed before start. Zero-length spans are
	// skipped too: they can never contribute content.
	for it.hint < len(spans) {
		s := spans[it.hint]
		if s.IsEmpty() || it.offsets[it.hint]+s.Len() <= start {
			it.hint++
			continue
		}
		break
	}

	if start == end {
		return []Segment{it.degenerate(start)}
	}

	var segments []Segment
	for i := it.hint; i < len(spans) && it.offsets[i] < end; i++ {
		s := spans[i]
		if s.IsEmpty() {
			continue
		}
		lo := max(start, it.offsets[i])
		hi := min(end, it.offsets[i]+s.Len())
		if lo >= hi {
			continue
		}
		segments = append(segments, Segment{
			Span:  i,
			Start: lo - it.offsets[i],
			End:   hi - it.offsets[i],
			Width: runewidth.StringWidth(it.logical[lo:hi]),
		})
	}
	return segments
}

// degenerate builds a zero-length segment at the given logical position
func (it *ChunkIterator) degenerate(pos int) Segment {
	spans := it.source.Spans()
	for i := it.hint; i < len(spans); i++ {
		if spans[i].IsEmpty() {
			continue
		}
		if pos < it.offsets[i]+spans[i].Len() {
			return Segment{Span: i, Start: pos - it.offsets[i], End: pos - it.offsets[i]}
		}
	}
	// Position is at the very end of the text; anchor to the last
	// non-empty span.
	for i := len(spans) - 1; i >= 0; i-- {
		if !spans[i].IsEmpty() {
			n := spans[i].Len()
			return Segment{Span: i, Start: n, End: n}
		}
	}
	return Segment{}
}

// trimTerminator strips one trailing line terminator (LF, CRLF, CR, VT,
// FF, NEL, LS, PS) and reports whether one was present
func trimTerminator(s string) (string, bool) {
	r, size := utf8.DecodeLastRuneInString(s)
	switch r {
	case '\n':
		s = s[:len(s)-size]
		if strings.HasSuffix(s, "\r") {
			s = s[:len(s)-1]
		}
		return s, true
	case '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return s[:len(s)-size], true
	}
	return s, false
}
