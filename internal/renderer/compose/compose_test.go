package compose

import (
	"reflect"
	"testing"

	"github.com/dshills/barcode/internal/engine/buffer"
)

func pts(xy ...int) []buffer.Point {
	out := make([]buffer.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, buffer.Point{Column: xy[i], Line: xy[i+1]})
	}
	return out
}

func TestComposeStrings(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		cursors []buffer.Point
		want    []string
	}{
		{"empty buffer", nil, pts(0, 0), []string{"│"}},
		{"middle", []string{"abc"}, pts(1, 0), []string{"a│bc"}},
		{"end of line", []string{"abc"}, pts(3, 0), []string{"abc│"}},
		{"two on one line", []string{"abcdefgh"}, pts(2, 0, 5, 0), []string{"ab│cde│fgh"}},
		{"input order irrelevant", []string{"abcdefgh"}, pts(5, 0, 2, 0), []string{"ab│cde│fgh"}},
		{"padding past end", []string{"ab"}, pts(5, 0), []string{"ab   │"}},
		{"separate lines", []string{"one", "two", "three"}, pts(0, 0, 3, 2), []string{"│one", "two", "thr│ee"}},
		{"no cursors", []string{"x"}, nil, []string{"x"}},
		{"coincident", []string{"ab"}, pts(1, 0, 1, 0), []string{"a││b"}},
		{"multibyte", []string{"日本語"}, pts(1, 0), []string{"日│本語"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromLines(tt.lines, "")
			got := New(0).ComposeStrings(buf, tt.cursors)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeMarksPrimary(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"abcd"}, "")

	// secondary left of primary, then a secondary sharing the primary's column
	lines := New(0).Compose(buf, pts(3, 0, 1, 0, 3, 0))
	line := lines[0]

	kinds := make([]UnitKind, len(line))
	for i, u := range line {
		kinds[i] = u.Kind
	}
	want := []UnitKind{
		UnitText, UnitSecondaryCursor, UnitText, UnitText,
		UnitPrimaryCursor, UnitSecondaryCursor, UnitText,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
}

func TestComposePaddingKind(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"a"}, "")

	line := New(0).Compose(buf, pts(3, 0))[0]
	if len(line) != 4 {
		t.Fatalf("expected 4 units, got %d", len(line))
	}
	if line[1].Kind != UnitPadding || line[2].Kind != UnitPadding {
		t.Errorf("expected padding units, got %v", line)
	}
	if !line[3].Kind.IsCursor() {
		t.Error("last unit should be the cursor")
	}
}

func TestComposeCustomMarker(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"ab"}, "")

	c := New('|')
	if got := c.ComposeStrings(buf, pts(1, 0)); got[0] != "a|b" {
		t.Errorf("got %q", got[0])
	}
	if c.Marker() != '|' {
		t.Errorf("Marker() = %q", c.Marker())
	}
}

func TestComposeIsPure(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"abc", "de"}, "")
	cursors := pts(2, 1, 0, 0, 1, 1)
	before := append([]buffer.Point(nil), cursors...)
	rev := buf.Revision()

	New(0).Compose(buf, cursors)

	if !reflect.DeepEqual(cursors, before) {
		t.Errorf("cursor slice modified: %v", cursors)
	}
	if buf.Revision() != rev || buf.Text() != "abc\nde" {
		t.Error("buffer modified by compose")
	}
}
