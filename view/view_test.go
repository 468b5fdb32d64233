package view

import (
	"testing"

	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/grid"
	"github.com/lixenwraith/loom/span"
)

// echoView answers exactly the space it is offered
type echoView struct{}

func (echoView) RequiredSize(available geom.Vec) geom.Vec { return available }
func (echoView) Layout(geom.Vec)                          {}
func (echoView) Draw(grid.Region)                         {}
func (echoView) NeedsRelayout() bool                      { return false }

// wantView always answers the same size regardless of the offer
type wantView struct {
	size geom.Vec
}

func (v wantView) RequiredSize(geom.Vec) geom.Vec { return v.size }
func (wantView) Layout(geom.Vec)                  {}
func (wantView) Draw(grid.Region)                 {}
func (wantView) NeedsRelayout() bool              { return false }

func TestMinWidth(t *testing.T) {
	v := MinWidth(5, echoView{})

	if got := v.RequiredSize(geom.V(1, 1)); got != geom.V(5, 1) {
		t.Errorf("small offer: expected (5,1), got %v", got)
	}
	if got := v.RequiredSize(geom.V(10, 10)); got != geom.V(10, 10) {
		t.Errorf("large offer: expected (10,10), got %v", got)
	}
}

func TestMaxWidth(t *testing.T) {
	v := MaxWidth(5, echoView{})

	if got := v.RequiredSize(geom.V(10, 1)); got != geom.V(5, 1) {
		t.Errorf("large offer: expected (5,1), got %v", got)
	}
	if got := v.RequiredSize(geom.V(3, 1)); got != geom.V(3, 1) {
		t.Errorf("small offer: expected (3,1), got %v", got)
	}
}

func TestFixedSize(t *testing.T) {
	v := FixedSize(geom.V(5, 3), echoView{})

	if got := v.RequiredSize(geom.V(10, 10)); got != geom.V(5, 3) {
		t.Errorf("large offer: expected (5,3), got %v", got)
	}
	// A fixed constraint claims its size even past availability.
	if got := v.RequiredSize(geom.V(2, 2)); got != geom.V(5, 3) {
		t.Errorf("small offer: expected (5,3), got %v", got)
	}
}

func TestFullScreen(t *testing.T) {
	v := FullScreen(wantView{size: geom.V(3, 2)})
	if got := v.RequiredSize(geom.V(10, 8)); got != geom.V(10, 8) {
		t.Errorf("expected greedy (10,8), got %v", got)
	}
	// A child answering larger than available keeps its answer.
	v = FullScreen(wantView{size: geom.V(20, 2)})
	if got := v.RequiredSize(geom.V(10, 8)); got.X != 20 {
		t.Errorf("expected oversized X 20, got %v", got)
	}
}

func sample() span.StyledText {
	return span.Plain("I didn't say half the things people say I did.\n\n    - A. Einstein")
}

func TestTextViewWraps(t *testing.T) {
	tv := NewTextView(sample())

	size := tv.RequiredSize(geom.V(17, 100))
	if size != geom.V(17, 5) {
		t.Errorf("expected (17,5), got %v", size)
	}

	tv.Layout(geom.V(17, 5))
	if len(tv.Rows()) != 5 {
		t.Errorf("expected 5 rows after layout, got %d", len(tv.Rows()))
	}
	if tv.NeedsRelayout() {
		t.Error("fresh layout must not need relayout")
	}
}

func TestTextViewUnwrappedWidth(t *testing.T) {
	// With no wrapping the view is as wide as its widest row.
	tv := NewTextView(span.Plain("hi\nthere"))
	size := tv.RequiredSize(geom.V(80, 10))
	if size != geom.V(5, 2) {
		t.Errorf("expected (5,2), got %v", size)
	}
}

func TestTextViewCacheAccept(t *testing.T) {
	tv := NewTextView(span.Plain("hi"))
	tv.Layout(geom.V(10, 1))

	rows := tv.Rows()
	// The content never filled the width, so a wider request reuses the
	// cached rows.
	tv.Layout(geom.V(50, 1))
	if len(tv.Rows()) != len(rows) {
		t.Error("compatible request must keep cached rows")
	}
	if tv.NeedsRelayout() {
		t.Error("compatible request must keep the cache valid")
	}
}

func TestTextViewCacheInvalidation(t *testing.T) {
	tv := NewTextView(sample())
	tv.Layout(geom.V(17, 5))

	// Wrapped content is width-constrained: more space must re-wrap.
	tv.computeRows(geom.V(40, 5))
	if tv.hasCache {
		t.Error("wider request on constrained axis must bust the cache")
	}

	tv.Layout(geom.V(40, 5))
	if tv.NeedsRelayout() {
		t.Error("layout must rebuild the cache")
	}

	tv.SetContent(span.Plain("new"))
	if !tv.NeedsRelayout() {
		t.Error("content change must invalidate the cache")
	}
}

func TestTextViewNoWrap(t *testing.T) {
	tv := NewTextView(span.Plain("one two three four five"))
	tv.SetWrap(false)
	size := tv.RequiredSize(geom.V(10, 10))
	if size.Y != 1 {
		t.Errorf("unwrapped text must stay on one row, got %d", size.Y)
	}
	if size.X != 23 {
		t.Errorf("expected natural width 23, got %d", size.X)
	}
}

func TestTextViewZeroWidth(t *testing.T) {
	tv := NewTextView(sample())
	size := tv.RequiredSize(geom.V(0, 10))
	if size != geom.V(0, 0) {
		t.Errorf("expected (0,0), got %v", size)
	}
}

func TestTextViewDraw(t *testing.T) {
	tv := NewTextView(span.Plain("ab\ncd"))
	tv.Layout(geom.V(10, 2))

	buf := grid.NewBuffer(10, 2)
	tv.Draw(buf.Root())

	cell, _ := buf.Get(0, 0)
	if cell.Rune != 'a' {
		t.Errorf("expected 'a' at (0,0), got %q", cell.Rune)
	}
	cell, _ = buf.Get(1, 1)
	if cell.Rune != 'd' {
		t.Errorf("expected 'd' at (1,1), got %q", cell.Rune)
	}
}

func TestTextViewScroll(t *testing.T) {
	tv := NewTextView(span.Plain("a\nb\nc\nd"))
	tv.Layout(geom.V(10, 2))

	sc := tv.Scroll()
	if !sc.CanScroll() {
		t.Fatal("4 rows in a 2-row viewport must scroll")
	}
	if sc.MaxOffset() != 2 {
		t.Errorf("expected max offset 2, got %d", sc.MaxOffset())
	}

	sc.ScrollBy(1)
	buf := grid.NewBuffer(10, 2)
	tv.Draw(buf.Root())
	cell, _ := buf.Get(0, 0)
	if cell.Rune != 'b' {
		t.Errorf("expected 'b' after scrolling, got %q", cell.Rune)
	}

	sc.End()
	if sc.Offset != 2 {
		t.Errorf("End: expected offset 2, got %d", sc.Offset)
	}
	sc.ScrollBy(10)
	if sc.Offset != 2 {
		t.Errorf("scroll past end must clamp, got %d", sc.Offset)
	}
	sc.Home()
	if sc.Offset != 0 {
		t.Errorf("Home: expected offset 0, got %d", sc.Offset)
	}
	sc.ScrollBy(-1)
	if sc.Offset != 0 {
		t.Errorf("scroll past top must clamp, got %d", sc.Offset)
	}
}
