// Package backend provides the painter and event source abstraction used by
// the renderer and the control loop.
package backend

import (
	"time"

	"github.com/dshills/barcode/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// KeyEvent builds a key event.
func KeyEvent(k Key, mod ModMask) Event {
	return Event{Type: EventKey, Key: k, Mod: mod}
}

// RuneEvent builds a key event for a typed character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// Backend is the surface the editor paints on and reads input from.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the terminal cursor.
	ShowCursor(x, y int)

	// HideCursor hides the terminal cursor.
	HideCursor()

	// PollEvent waits up to timeout for the next event. The boolean is
	// false when the timeout elapsed without an event. A non-positive
	// timeout waits indefinitely.
	PollEvent(timeout time.Duration) (Event, bool)

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}
