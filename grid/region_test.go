package grid

import (
	"testing"

	"github.com/lixenwraith/loom/lines"
	"github.com/lixenwraith/loom/span"
	"github.com/lixenwraith/loom/style"
)

func cellRune(t *testing.T, b *Buffer, x, y int) rune {
	t.Helper()
	cell, ok := b.Get(x, y)
	if !ok {
		t.Fatalf("(%d,%d) out of bounds", x, y)
	}
	return cell.Rune
}

func TestPrint(t *testing.T) {
	b := NewBuffer(10, 2)
	next := b.Root().Print(1, 0, "abc", style.None())
	if next != 4 {
		t.Errorf("expected next x 4, got %d", next)
	}
	want := " abc      "
	for x, r := range want {
		if got := cellRune(t, b, x, 0); got != r {
			t.Errorf("cell (%d,0): expected %q, got %q", x, r, got)
		}
	}
}

func TestPrintWideRunes(t *testing.T) {
	b := NewBuffer(10, 1)
	next := b.Root().Print(0, 0, "日本", style.None())
	if next != 4 {
		t.Errorf("expected next x 4, got %d", next)
	}
	if got := cellRune(t, b, 0, 0); got != '日' {
		t.Errorf("cell 0: expected 日, got %q", got)
	}
	// The trailing cell of a wide rune is blanked.
	if got := cellRune(t, b, 1, 0); got != ' ' {
		t.Errorf("cell 1: expected blank continuation, got %q", got)
	}
	if got := cellRune(t, b, 2, 0); got != '本' {
		t.Errorf("cell 2: expected 本, got %q", got)
	}
}

func TestPrintClips(t *testing.T) {
	b := NewBuffer(4, 1)
	b.Root().Print(2, 0, "abcdef", style.None())
	if got := cellRune(t, b, 3, 0); got != 'b' {
		t.Errorf("cell 3: expected %q, got %q", 'b', got)
	}
	// Out-of-region rows are silently dropped.
	b.Root().Print(0, 5, "x", style.None())
}

func TestSubClipping(t *testing.T) {
	b := NewBuffer(10, 10)
	root := b.Root()

	sub := root.Sub(2, 2, 5, 5)
	if sub.Width() != 5 || sub.Height() != 5 {
		t.Errorf("expected 5x5, got %dx%d", sub.Width(), sub.Height())
	}

	// Oversized sub clips to the parent.
	sub = root.Sub(8, 8, 5, 5)
	if sub.Width() != 2 || sub.Height() != 2 {
		t.Errorf("expected clipped 2x2, got %dx%d", sub.Width(), sub.Height())
	}

	// Negative origin shifts and shrinks.
	sub = root.Sub(-2, 0, 5, 5)
	if sub.Width() != 3 {
		t.Errorf("expected width 3 after clip, got %d", sub.Width())
	}

	// Fully outside collapses to empty.
	sub = root.Sub(20, 20, 5, 5)
	if sub.Width() != 0 || sub.Height() != 0 {
		t.Errorf("expected empty region, got %dx%d", sub.Width(), sub.Height())
	}
}

func TestSubOffsetDrawing(t *testing.T) {
	b := NewBuffer(10, 10)
	sub := b.Root().Sub(3, 4, 4, 2)
	sub.SetCell(0, 0, 'x', style.None())
	if got := cellRune(t, b, 3, 4); got != 'x' {
		t.Errorf("expected x at buffer (3,4), got %q", got)
	}
	// Writes past the sub-region bounds are dropped.
	sub.SetCell(4, 0, 'y', style.None())
	if got := cellRune(t, b, 7, 4); got != ' ' {
		t.Errorf("out-of-region write leaked, got %q", got)
	}
}

func TestFillAndClear(t *testing.T) {
	b := NewBuffer(4, 2)
	red := style.Fg(style.RGB{R: 255})
	b.Root().Fill('#', red)
	cell, _ := b.Get(3, 1)
	if cell.Rune != '#' || cell.Style != red {
		t.Errorf("fill missed cell, got %+v", cell)
	}
	b.Root().Clear()
	cell, _ = b.Get(3, 1)
	if cell.Rune != ' ' || !cell.Style.IsZero() {
		t.Errorf("clear missed cell, got %+v", cell)
	}
}

func TestResize(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Root().Print(0, 0, "hi", style.None())
	b.Resize(6, 3)
	if b.Width() != 6 || b.Height() != 3 {
		t.Errorf("expected 6x3, got %dx%d", b.Width(), b.Height())
	}
	if got := cellRune(t, b, 0, 0); got != ' ' {
		t.Error("resize must clear content")
	}
	if _, ok := b.Get(6, 0); ok {
		t.Error("Get past width must fail")
	}
}

func TestPrintRow(t *testing.T) {
	input := span.Styled("ab", style.Style{Effects: style.EffectBold}).AppendPlain("cd")
	iter := lines.NewLinesIterator(input, 10)
	row, ok := iter.Next()
	if !ok {
		t.Fatal("expected a row")
	}

	b := NewBuffer(10, 1)
	b.Root().PrintRow(0, 0, row.Resolve(input))

	want := "abcd"
	for x, r := range want {
		cell, _ := b.Get(x, 0)
		if cell.Rune != r {
			t.Errorf("cell %d: expected %q, got %q", x, r, cell.Rune)
		}
	}
	cell, _ := b.Get(0, 0)
	if !cell.Style.Effects.Has(style.EffectBold) {
		t.Error("styled span lost its effect")
	}
	cell, _ = b.Get(2, 0)
	if cell.Style.Effects.Has(style.EffectBold) {
		t.Error("plain span gained an effect")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string must pass through, got %q", got)
	}
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Errorf("expected %q, got %q", "hello…", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("zero width yields empty, got %q", got)
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("expected %q, got %q", "ab  ", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("expected %q, got %q", "  ab", got)
	}
	if got := StringWidth("日a"); got != 3 {
		t.Errorf("expected width 3, got %d", got)
	}
}
