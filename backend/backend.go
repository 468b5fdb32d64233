// Package backend abstracts terminal output behind a narrow interface.
// The layout core never touches it; only the application shell does.
package backend

import (
	"github.com/lixenwraith/loom/grid"
)

// EventKind discriminates input events
type EventKind uint8

const (
	EventKey EventKind = iota
	EventResize
	EventInterrupt
)

// Event is a minimal terminal input event
type Event struct {
	Kind          EventKind
	Rune          rune
	Width, Height int
}

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// Output
	// Render flushes a cell buffer to the terminal.
	Render(buf *grid.Buffer) error

	// Input
	// PollEvent blocks until an input event is available.
	PollEvent() Event

	// Callbacks
	// SetResizeHandler registers a callback for terminal resize events.
	SetResizeHandler(handler func(width, height int))
}
