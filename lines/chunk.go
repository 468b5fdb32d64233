package lines

// Chunk is a non-splittable piece of text for wrapping purposes: a word,
// a whitespace run, or the remnant of a hard line break. It may straddle
// span boundaries, in which case it carries one segment per span touched.
type Chunk struct {
	// Total display width of this chunk
	Width int

	// Segments this chunk contains, in reading order
	Segments []Segment

	// HardStop marks a non-optional line break (the terminator itself is
	// already stripped from the segments)
	HardStop bool

	// EndsWithSpace is set when the chunk ends in a literal ' ' byte;
	// such a chunk can be compressed by one cell at a wrap point
	EndsWithSpace bool
}

// chunkPart describes how much of a chunk has been consumed already,
// in both bytes and cells
type chunkPart struct {
	width  int
	length int
}

// length returns the chunk content length in bytes
func (c Chunk) length() int {
	n := 0
	for _, s := range c.Segments {
		n += s.Len()
	}
	return n
}

// clone returns a copy with its own segment slice
func (c Chunk) clone() Chunk {
	segs := make([]Segment, len(c.Segments))
	copy(segs, c.Segments)
	c.Segments = segs
	return c
}

// removeFront drops an already-consumed prefix from the chunk
func (c *Chunk) removeFront(part chunkPart) {
	for i := range c.Segments {
		seg := &c.Segments[i]
		if part.length <= seg.Len() {
			// This segment is bigger than what is left to remove,
			// trim the prefix and stop there.
			seg.Start += part.length
			seg.Width -= part.width
			c.Width -= part.width
			break
		}
		// This segment is consumed entirely.
		part.length -= seg.Len()
		part.width -= seg.Width
		c.Width -= seg.Width
		seg.Start = seg.End
		seg.Width = 0
	}
}

// removeLastChar trims a trailing breakable space, used when the chunk
// barely fits at the end of a row. Hard stops have nothing left to trim:
// their terminator was stripped by the chunk iterator.
func (c *Chunk) removeLastChar() {
	if !c.EndsWithSpace || len(c.Segments) == 0 {
		return
	}
	c.Width--
	c.EndsWithSpace = false
	last := &c.Segments[len(c.Segments)-1]
	last.End--
	last.Width--
}
