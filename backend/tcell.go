package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/loom/grid"
	"github.com/lixenwraith/loom/style"
)

// Tcell renders cell buffers through a tcell screen
type Tcell struct {
	screen        tcell.Screen
	resizeHandler func(width, height int)
}

// NewTcell creates an uninitialized tcell backend
func NewTcell() *Tcell {
	return &Tcell{}
}

// Init allocates and initializes the screen
func (t *Tcell) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	t.screen = screen
	return nil
}

// Fini restores the terminal
func (t *Tcell) Fini() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// Size returns the current terminal dimensions
func (t *Tcell) Size() (int, int) {
	return t.screen.Size()
}

// SetResizeHandler registers a callback for terminal resize events
func (t *Tcell) SetResizeHandler(handler func(width, height int)) {
	t.resizeHandler = handler
}

// Render flushes the buffer to the screen
func (t *Tcell) Render(buf *grid.Buffer) error {
	if t.screen == nil {
		return errors.New("backend not initialized")
	}
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell, ok := buf.Get(x, y)
			if !ok {
				continue
			}
			t.screen.SetContent(x, y, cell.Rune, nil, toTcellStyle(cell.Style))
		}
	}
	t.screen.Show()
	return nil
}

// PollEvent blocks until an input event arrives
func (t *Tcell) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			t.screen.Sync()
			if t.resizeHandler != nil {
				t.resizeHandler(w, h)
			}
			return Event{Kind: EventResize, Width: w, Height: h}
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return Event{Kind: EventInterrupt}
			case tcell.KeyRune:
				return Event{Kind: EventKey, Rune: ev.Rune()}
			default:
				return Event{Kind: EventKey}
			}
		case nil:
			return Event{Kind: EventInterrupt}
		}
	}
}

// toTcellStyle maps a style to tcell colors and attributes
func toTcellStyle(st style.Style) tcell.Style {
	out := tcell.StyleDefault
	if st.HasFg {
		out = out.Foreground(tcell.NewRGBColor(int32(st.Fg.R), int32(st.Fg.G), int32(st.Fg.B)))
	}
	if st.HasBg {
		out = out.Background(tcell.NewRGBColor(int32(st.Bg.R), int32(st.Bg.G), int32(st.Bg.B)))
	}
	if st.Effects.Has(style.EffectBold) {
		out = out.Bold(true)
	}
	if st.Effects.Has(style.EffectItalic) {
		out = out.Italic(true)
	}
	if st.Effects.Has(style.EffectUnderline) {
		out = out.Underline(true)
	}
	if st.Effects.Has(style.EffectReverse) {
		out = out.Reverse(true)
	}
	if st.Effects.Has(style.EffectDim) {
		out = out.Dim(true)
	}
	if st.Effects.Has(style.EffectBlink) {
		out = out.Blink(true)
	}
	if st.Effects.Has(style.EffectStrikethrough) {
		out = out.StrikeThrough(true)
	}
	return out
}
