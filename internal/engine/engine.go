package engine

import (
	"sync"

	"github.com/dshills/barcode/internal/engine/buffer"
	"github.com/dshills/barcode/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a line/column position.
	Point = buffer.Point

	// Cursor is a single insertion point.
	Cursor = cursor.Cursor
)

// Engine is the editing facade over one buffer and its cursors.
// All operations are thread-safe.
type Engine struct {
	mu sync.RWMutex

	buf     *buffer.Buffer
	cursors *cursor.CursorSet

	readOnly      bool
	savedRevision uint64
}

// New creates a new Engine with the given options.
// Without WithBuffer the engine edits an empty, unnamed buffer.
func New(opts ...Option) *Engine {
	e := &Engine{}

	for _, opt := range opts {
		opt(e)
	}

	if e.buf == nil {
		e.buf = buffer.NewBuffer()
	}
	e.cursors = cursor.NewCursorSet(cursor.New(0, 0))
	e.savedRevision = e.buf.Revision()

	return e
}

// Buffer returns the buffer being edited.
func (e *Engine) Buffer() *buffer.Buffer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf
}

// Replace swaps in a freshly loaded buffer and resets the cursors to the
// start of it.
func (e *Engine) Replace(buf *buffer.Buffer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf = buf
	e.cursors.Reset(cursor.New(0, 0))
	e.savedRevision = buf.Revision()
}

// Primary returns the primary cursor.
func (e *Engine) Primary() Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Primary()
}

// Cursors returns a copy of all cursors, primary first.
func (e *Engine) Cursors() []Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.All()
}

// CursorPositions returns every cursor position, primary first.
func (e *Engine) CursorPositions() []Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Positions()
}

// CursorCount returns the number of cursors.
func (e *Engine) CursorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Count()
}

// IsReadOnly reports whether edits are rejected.
func (e *Engine) IsReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}

// Modified reports whether the buffer changed since it was loaded or last
// saved.
func (e *Engine) Modified() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Revision() != e.savedRevision
}

// MarkSaved records the current buffer state as persisted.
func (e *Engine) MarkSaved() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.savedRevision = e.buf.Revision()
}

// InsertChar inserts ch at every cursor.
func (e *Engine) InsertChar(ch rune) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	e.cursors.InsertChar(e.buf, ch)
	return nil
}

// InsertText types text at every cursor, one rune at a time.
// A '\n' inserts a newline and '\r' is dropped.
func (e *Engine) InsertText(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	for _, r := range text {
		switch r {
		case '\r':
		case '\n':
			e.cursors.InsertNewline(e.buf)
		default:
			e.cursors.InsertChar(e.buf, r)
		}
	}
	return nil
}

// InsertNewline splits the line at every cursor.
func (e *Engine) InsertNewline() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	e.cursors.InsertNewline(e.buf)
	return nil
}

// Backspace deletes left of every cursor.
func (e *Engine) Backspace() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	e.cursors.Backspace(e.buf)
	return nil
}

// MoveLeft moves the primary cursor left.
func (e *Engine) MoveLeft() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveLeft(e.buf)
}

// MoveRight moves the primary cursor right.
func (e *Engine) MoveRight() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveRight(e.buf)
}

// MoveUp moves the primary cursor up.
func (e *Engine) MoveUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveUp(e.buf)
}

// MoveDown moves the primary cursor down.
func (e *Engine) MoveDown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveDown(e.buf)
}

// DuplicatePrimary adds a secondary cursor at the primary's position.
func (e *Engine) DuplicatePrimary() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.DuplicatePrimary()
}

// Collapse removes every secondary cursor.
func (e *Engine) Collapse() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Collapse()
}
