package lines

// chunkStream is a peekable source of chunks
type chunkStream interface {
	peek() *Chunk
	next() (Chunk, bool)
}

// chunkPeeker adds one-chunk lookahead to a ChunkIterator
type chunkPeeker struct {
	it  *ChunkIterator
	cur *Chunk
}

func (p *chunkPeeker) peek() *Chunk {
	if p.cur == nil {
		if c, ok := p.it.Next(); ok {
			p.cur = &c
		}
	}
	return p.cur
}

func (p *chunkPeeker) next() (Chunk, bool) {
	c := p.peek()
	if c == nil {
		return Chunk{}, false
	}
	out := *c
	p.cur = nil
	return out, true
}

// sliceStream serves pre-materialized chunks (grapheme force-splits)
type sliceStream struct {
	chunks []Chunk
	i      int
}

func (s *sliceStream) peek() *Chunk {
	if s.i >= len(s.chunks) {
		return nil
	}
	return &s.chunks[s.i]
}

func (s *sliceStream) next() (Chunk, bool) {
	c := s.peek()
	if c == nil {
		return Chunk{}, false
	}
	s.i++
	return *c, true
}

// fitResult describes how well a chunk fits in the available space
type fitResult uint8

const (
	// The chunk fits as-is
	fits fitResult = iota
	// The chunk fits but ends the row; a trailing space may be trimmed
	fitsBarely
	// The chunk does not fit
	doesNotFit
)

// considerChunk decides how a chunk could fit in the available width
func considerChunk(available int, c *Chunk) fitResult {
	if c.Width <= available {
		if c.HardStop {
			// Fits, but the row has to stop here.
			return fitsBarely
		}
		return fits
	}
	if c.Width == available+1 && c.EndsWithSpace {
		// One cell too wide, but the trailing space can be dropped.
		return fitsBarely
	}
	return doesNotFit
}

// prefix accumulates chunks from the stream as long as they fit in the
// given width. offset tracks how much of the first chunk was consumed by
// previous rows, and is reset once that chunk is taken.
func prefix(stream chunkStream, width int, offset *chunkPart) []Chunk {
	available := width
	var chunks []Chunk

	for {
		next := stream.peek()
		if next == nil {
			break
		}

		// The fit test must account for the already-consumed part:
		// (chunk - offset) fits available iff chunk fits (available + offset).
		switch considerChunk(available+offset.width, next) {
		case fits:
			chunk, _ := stream.next()
			chunk.removeFront(*offset)
			*offset = chunkPart{}
			available -= chunk.Width
			chunks = append(chunks, chunk)

		case fitsBarely:
			chunk, _ := stream.next()
			chunk.removeFront(*offset)
			*offset = chunkPart{}
			chunk.removeLastChar()
			chunks = append(chunks, chunk)
			return chunks

		case doesNotFit:
			return chunks
		}
	}
	return chunks
}
