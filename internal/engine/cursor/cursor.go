package cursor

import (
	"fmt"

	"github.com/dshills/barcode/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Store is the line store a cursor edits.
// *buffer.Buffer satisfies it.
type Store interface {
	LineCount() int
	LineLen(y int) int
	InsertCharAt(pos Point, ch rune)
	InsertNewlineAt(pos Point) Point
	RemoveCharBefore(pos Point) Point
}

// Cursor is an insertion point in a Store.
type Cursor struct {
	X int // rune column, 0 <= X <= len(line Y)
	Y int // line index, 0 <= Y < line count
}

// New creates a cursor at column x of line y.
func New(x, y int) Cursor {
	return Cursor{X: x, Y: y}
}

// Point returns the cursor position as a buffer point.
func (c Cursor) Point() Point {
	return Point{Line: c.Y, Column: c.X}
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d,%d)", c.X, c.Y)
}

func (c *Cursor) setPoint(p Point) {
	c.X = p.Column
	c.Y = p.Line
}

// Clamp moves the cursor to the nearest valid position in s.
func (c *Cursor) Clamp(s Store) {
	if c.Y >= s.LineCount() {
		c.Y = s.LineCount() - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X < 0 {
		c.X = 0
	}
	if n := s.LineLen(c.Y); c.X > n {
		c.X = n
	}
}

// MoveLeft moves one column left, wrapping to the end of the previous line.
// At (0,0) nothing changes.
func (c *Cursor) MoveLeft(s Store) {
	c.Clamp(s)
	if c.X > 0 {
		c.X--
	} else if c.Y > 0 {
		c.Y--
		c.X = s.LineLen(c.Y)
	}
}

// MoveRight moves one column right, wrapping to the start of the next line.
// At the end of the last line nothing changes.
func (c *Cursor) MoveRight(s Store) {
	c.Clamp(s)
	if c.X < s.LineLen(c.Y) {
		c.X++
	} else if c.Y+1 < s.LineCount() {
		c.Y++
		c.X = 0
	}
}

// MoveUp moves to the previous line keeping the column where possible.
// On the first line it moves to column 0.
func (c *Cursor) MoveUp(s Store) {
	c.Clamp(s)
	if c.Y == 0 {
		c.X = 0
		return
	}
	c.Y--
	c.X = min(c.X, s.LineLen(c.Y))
}

// MoveDown moves to the next line keeping the column where possible.
// On the last line it moves to the end of that line.
func (c *Cursor) MoveDown(s Store) {
	c.Clamp(s)
	if c.Y+1 >= s.LineCount() {
		c.X = s.LineLen(c.Y)
		return
	}
	c.Y++
	c.X = min(c.X, s.LineLen(c.Y))
}

// InsertChar inserts ch at the cursor and moves right past it.
func (c *Cursor) InsertChar(s Store, ch rune) Edit {
	c.Clamp(s)
	before := c.Point()
	s.InsertCharAt(before, ch)
	c.X++
	return Edit{Kind: EditInsertChar, Before: before, After: c.Point()}
}

// InsertNewline splits the line at the cursor and moves to the start of the
// new line.
func (c *Cursor) InsertNewline(s Store) Edit {
	c.Clamp(s)
	before := c.Point()
	c.setPoint(s.InsertNewlineAt(before))
	return Edit{Kind: EditNewline, Before: before, After: c.Point()}
}

// Backspace removes the rune left of the cursor, joining with the previous
// line at column 0. At (0,0) nothing changes.
func (c *Cursor) Backspace(s Store) Edit {
	c.Clamp(s)
	before := c.Point()
	c.setPoint(s.RemoveCharBefore(before))

	kind := EditNone
	switch {
	case before.Column > 0:
		kind = EditDeleteChar
	case before.Line > 0:
		kind = EditMergeLine
	}
	return Edit{Kind: kind, Before: before, After: c.Point()}
}
