package cursor

// EditKind identifies the structural effect of a single-cursor edit.
type EditKind uint8

const (
	EditNone       EditKind = iota
	EditInsertChar          // one rune inserted at Before
	EditNewline             // line split at Before
	EditDeleteChar          // rune left of Before removed
	EditMergeLine           // line Before.Line joined onto the previous line
)

// String returns the name of the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditInsertChar:
		return "insert"
	case EditNewline:
		return "newline"
	case EditDeleteChar:
		return "delete"
	case EditMergeLine:
		return "merge"
	default:
		return "none"
	}
}

// Edit records where the editing cursor stood before and after an edit.
// For EditMergeLine, After.Column is the length of the previous line before
// the merge.
type Edit struct {
	Kind   EditKind
	Before Point
	After  Point
}

// Transform returns where a cursor at p ends up after edit e was applied by
// another cursor. A cursor at e.Before follows the editing cursor to
// e.After.
//
// Transformation rules:
//   - insert: same-line positions right of the insertion shift right by one
//   - newline: same-line positions right of the split move to the new line,
//     later lines shift down by one
//   - delete: same-line positions at or right of the deleted rune shift left
//   - merge: the merged line moves onto the previous line after its
//     original content, later lines shift up by one
func Transform(p Point, e Edit) Point {
	if p == e.Before {
		return e.After
	}

	b := e.Before
	switch e.Kind {
	case EditInsertChar:
		if p.Line == b.Line && p.Column > b.Column {
			p.Column++
		}

	case EditNewline:
		switch {
		case p.Line == b.Line && p.Column > b.Column:
			p = Point{Line: e.After.Line, Column: p.Column - b.Column}
		case p.Line > b.Line:
			p.Line++
		}

	case EditDeleteChar:
		if p.Line == b.Line && p.Column >= b.Column {
			p.Column--
		}

	case EditMergeLine:
		switch {
		case p.Line == b.Line:
			p = Point{Line: e.After.Line, Column: e.After.Column + p.Column}
		case p.Line > b.Line:
			p.Line--
		}
	}
	return p
}

// TransformCursor updates a cursor after an edit made by another cursor.
func TransformCursor(c Cursor, e Edit) Cursor {
	p := Transform(c.Point(), e)
	return Cursor{X: p.Column, Y: p.Line}
}
