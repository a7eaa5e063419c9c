package cursor

import "sort"

// CursorSet manages the cursors of an editing session.
// The first cursor is the primary cursor. A set is never empty.
type CursorSet struct {
	cursors []Cursor
}

// NewCursorSet creates a cursor set holding only the given primary cursor.
func NewCursorSet(primary Cursor) *CursorSet {
	return &CursorSet{
		cursors: []Cursor{primary},
	}
}

// Primary returns the primary cursor.
func (cs *CursorSet) Primary() Cursor {
	return cs.cursors[0]
}

// Count returns the number of cursors.
func (cs *CursorSet) Count() int {
	return len(cs.cursors)
}

// IsMulti returns true if there are secondary cursors.
func (cs *CursorSet) IsMulti() bool {
	return len(cs.cursors) > 1
}

// Get returns the cursor at index.
// Returns the zero cursor if index is out of range.
func (cs *CursorSet) Get(index int) Cursor {
	if index < 0 || index >= len(cs.cursors) {
		return Cursor{}
	}
	return cs.cursors[index]
}

// All returns a copy of all cursors in set order.
func (cs *CursorSet) All() []Cursor {
	result := make([]Cursor, len(cs.cursors))
	copy(result, cs.cursors)
	return result
}

// Positions returns every cursor position in set order.
func (cs *CursorSet) Positions() []Point {
	result := make([]Point, len(cs.cursors))
	for i, c := range cs.cursors {
		result[i] = c.Point()
	}
	return result
}

// DuplicatePrimary appends a copy of the primary cursor.
func (cs *CursorSet) DuplicatePrimary() {
	cs.cursors = append(cs.cursors, cs.cursors[0])
}

// Collapse removes every secondary cursor.
func (cs *CursorSet) Collapse() {
	cs.cursors = cs.cursors[:1]
}

// Reset replaces all cursors with a single primary cursor at c.
func (cs *CursorSet) Reset(c Cursor) {
	cs.cursors = []Cursor{c}
}

// ClampAll moves every cursor to the nearest valid position in s.
func (cs *CursorSet) ClampAll(s Store) {
	for i := range cs.cursors {
		cs.cursors[i].Clamp(s)
	}
}

// MoveLeft moves the primary cursor left.
func (cs *CursorSet) MoveLeft(s Store) { cs.cursors[0].MoveLeft(s) }

// MoveRight moves the primary cursor right.
func (cs *CursorSet) MoveRight(s Store) { cs.cursors[0].MoveRight(s) }

// MoveUp moves the primary cursor up.
func (cs *CursorSet) MoveUp(s Store) { cs.cursors[0].MoveUp(s) }

// MoveDown moves the primary cursor down.
func (cs *CursorSet) MoveDown(s Store) { cs.cursors[0].MoveDown(s) }

// InsertChar inserts ch at every cursor. Cursors are processed in ascending
// position order, each at the column it held before the batch; earlier
// insertions on the same line do not shift later cursors.
func (cs *CursorSet) InsertChar(s Store, ch rune) []Edit {
	cs.ClampAll(s)
	return cs.apply(cs.order(false), false, func(c *Cursor) Edit {
		return c.InsertChar(s, ch)
	})
}

// InsertNewline splits the line at every cursor. Cursors are processed in
// descending position order.
func (cs *CursorSet) InsertNewline(s Store) []Edit {
	cs.ClampAll(s)
	return cs.apply(cs.order(true), true, func(c *Cursor) Edit {
		return c.InsertNewline(s)
	})
}

// Backspace deletes left of every cursor. Cursors are processed in
// descending position order.
func (cs *CursorSet) Backspace(s Store) []Edit {
	cs.ClampAll(s)
	return cs.apply(cs.order(true), true, func(c *Cursor) Edit {
		return c.Backspace(s)
	})
}

// order returns cursor indices sorted by position. Ties keep set order.
func (cs *CursorSet) order(descending bool) []int {
	idx := make([]int, len(cs.cursors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		cmp := cs.cursors[idx[a]].Point().Compare(cs.cursors[idx[b]].Point())
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return idx
}

// apply runs edit on each cursor in order. Cursors sharing the editing
// cursor's position follow it and are not edited again. With shift set,
// every other cursor is transformed through each edit as well.
func (cs *CursorSet) apply(order []int, shift bool, edit func(*Cursor) Edit) []Edit {
	done := make([]bool, len(cs.cursors))
	edits := make([]Edit, 0, len(order))

	for _, i := range order {
		if done[i] {
			continue
		}
		e := edit(&cs.cursors[i])
		done[i] = true
		edits = append(edits, e)

		for j := range cs.cursors {
			if j == i {
				continue
			}
			if !done[j] && cs.cursors[j].Point() == e.Before {
				done[j] = true
				cs.cursors[j] = TransformCursor(cs.cursors[j], e)
				continue
			}
			if shift {
				cs.cursors[j] = TransformCursor(cs.cursors[j], e)
			}
		}
	}
	return edits
}
