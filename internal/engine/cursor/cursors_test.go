package cursor

import (
	"reflect"
	"testing"

	"github.com/dshills/barcode/internal/engine/buffer"
)

// setAt builds a set whose primary sits at the first cursor, followed by
// secondaries at the remaining ones.
func setAt(cursors ...Cursor) *CursorSet {
	cs := NewCursorSet(cursors[0])
	cs.cursors = append(cs.cursors, cursors[1:]...)
	return cs
}

func TestCursorSetDuplicateAndCollapse(t *testing.T) {
	cs := NewCursorSet(New(3, 1))

	cs.DuplicatePrimary()
	cs.DuplicatePrimary()
	if cs.Count() != 3 {
		t.Fatalf("expected 3 cursors, got %d", cs.Count())
	}
	if cs.Get(2) != New(3, 1) {
		t.Errorf("duplicate = %v, want (3,1)", cs.Get(2))
	}

	cs.Collapse()
	if cs.Count() != 1 || cs.IsMulti() {
		t.Fatalf("expected 1 cursor after collapse, got %d", cs.Count())
	}
	cs.Collapse()
	if cs.Count() != 1 || cs.Primary() != New(3, 1) {
		t.Errorf("collapse not idempotent: %v", cs.All())
	}
}

func TestCursorSetNavigationMovesPrimaryOnly(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"abcdef", "ghi"}, "")
	cs := NewCursorSet(New(2, 0))
	cs.DuplicatePrimary()

	cs.MoveRight(buf)
	cs.MoveDown(buf)

	if cs.Primary() != New(3, 1) {
		t.Errorf("primary = %v, want (3,1)", cs.Primary())
	}
	if cs.Get(1) != New(2, 0) {
		t.Errorf("secondary moved to %v", cs.Get(1))
	}
}

func TestCursorSetInsertCharSameLine(t *testing.T) {
	tests := []struct {
		name    string
		cursors []Cursor
		want    []Cursor
	}{
		{"primary left", []Cursor{New(2, 0), New(5, 0)}, []Cursor{New(3, 0), New(6, 0)}},
		{"primary right", []Cursor{New(5, 0), New(2, 0)}, []Cursor{New(6, 0), New(3, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromLines([]string{"abcdefgh"}, "")
			cs := setAt(tt.cursors...)

			cs.InsertChar(buf, 'X')

			if buf.Line(0) != "abXcdXefgh" {
				t.Errorf("line = %q, want abXcdXefgh", buf.Line(0))
			}
			if got := cs.All(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cursors = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorSetInsertCharNoShift(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"abc"}, "")
	cs := setAt(New(0, 0), New(1, 0), New(3, 0))

	edits := cs.InsertChar(buf, '-')

	if buf.Line(0) != "--a-bc" {
		t.Errorf("line = %q, want --a-bc", buf.Line(0))
	}
	if got := cs.All(); !reflect.DeepEqual(got, []Cursor{New(1, 0), New(2, 0), New(4, 0)}) {
		t.Errorf("cursors = %v", got)
	}
	for i, want := range []int{0, 1, 3} {
		if edits[i].Before.Column != want {
			t.Errorf("edit %d inserted at %d, want %d", i, edits[i].Before.Column, want)
		}
	}
}

func TestCursorSetInsertCharKeepsTyping(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"a", "b", "c"}, "")
	cs := setAt(New(1, 0), New(1, 1), New(1, 2))

	for _, r := range "xy" {
		cs.InsertChar(buf, r)
	}

	want := []string{"axy", "bxy", "cxy"}
	if got := buf.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestCursorSetInsertCharMultipleLines(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"one", "two"}, "")
	cs := setAt(New(3, 1), New(0, 0))

	cs.InsertChar(buf, '!')

	want := []string{"!one", "two!"}
	if got := buf.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestCursorSetInsertCharCoincident(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"ab"}, "")
	cs := NewCursorSet(New(1, 0))
	cs.DuplicatePrimary()

	cs.InsertChar(buf, 'x')

	if buf.Line(0) != "axb" {
		t.Errorf("line = %q, want axb", buf.Line(0))
	}
	if cs.Primary() != New(2, 0) || cs.Get(1) != New(2, 0) {
		t.Errorf("cursors = %v, want both at (2,0)", cs.All())
	}
}

func TestCursorSetInsertNewlineDescending(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"l0", "line1", "l2", "line3"}, "")
	cs := setAt(New(2, 1), New(3, 3))

	cs.InsertNewline(buf)

	want := []string{"l0", "li", "ne1", "l2", "lin", "e3"}
	if got := buf.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if cs.Primary() != New(0, 2) {
		t.Errorf("primary = %v, want (0,2)", cs.Primary())
	}
	if cs.Get(1) != New(0, 5) {
		t.Errorf("secondary = %v, want (0,5)", cs.Get(1))
	}
}

func TestCursorSetInsertNewlineSameLine(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"abcd"}, "")
	cs := setAt(New(1, 0), New(3, 0))

	cs.InsertNewline(buf)

	want := []string{"a", "bc", "d"}
	if got := buf.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if got := cs.All(); !reflect.DeepEqual(got, []Cursor{New(0, 1), New(0, 2)}) {
		t.Errorf("cursors = %v", got)
	}
}

func TestCursorSetBackspace(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		cursors []Cursor
		want    []string
		after   []Cursor
	}{
		{
			"same line",
			[]string{"abcd"},
			[]Cursor{New(1, 0), New(3, 0)},
			[]string{"bd"},
			[]Cursor{New(0, 0), New(1, 0)},
		},
		{
			"adjacent",
			[]string{"abcd"},
			[]Cursor{New(3, 0), New(4, 0)},
			[]string{"ab"},
			[]Cursor{New(2, 0), New(2, 0)},
		},
		{
			"merge with cursor on merged line",
			[]string{"ab", "cd"},
			[]Cursor{New(0, 1), New(2, 1)},
			[]string{"abc"},
			[]Cursor{New(2, 0), New(3, 0)},
		},
		{
			"merges on several lines",
			[]string{"a", "b", "c"},
			[]Cursor{New(0, 1), New(0, 2)},
			[]string{"abc"},
			[]Cursor{New(1, 0), New(2, 0)},
		},
		{
			"origin is a no-op",
			[]string{"ab", "cd"},
			[]Cursor{New(0, 0), New(1, 1)},
			[]string{"ab", "d"},
			[]Cursor{New(0, 0), New(0, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromLines(tt.lines, "")
			cs := setAt(tt.cursors...)

			cs.Backspace(buf)

			if got := buf.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if got := cs.All(); !reflect.DeepEqual(got, tt.after) {
				t.Errorf("cursors = %v, want %v", got, tt.after)
			}
		})
	}
}

func TestCursorSetEditsStayInBounds(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"alpha", "", "gamma delta"}, "")
	cs := setAt(New(5, 0), New(0, 1), New(3, 2), New(11, 2))

	ops := []func(){
		func() { cs.InsertChar(buf, 'q') },
		func() { cs.InsertNewline(buf) },
		func() { cs.Backspace(buf) },
		func() { cs.Backspace(buf) },
		func() { cs.Backspace(buf) },
		func() { cs.InsertChar(buf, 'z') },
	}

	for n, op := range ops {
		op()
		for i, c := range cs.All() {
			if c.Y < 0 || c.Y >= buf.LineCount() || c.X < 0 || c.X > buf.LineLen(c.Y) {
				t.Fatalf("op %d: cursor %d out of bounds at %v", n, i, c)
			}
		}
	}
}

func TestCursorSetPositions(t *testing.T) {
	cs := setAt(New(1, 2), New(3, 4))

	want := []Point{{Line: 2, Column: 1}, {Line: 4, Column: 3}}
	if got := cs.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}
