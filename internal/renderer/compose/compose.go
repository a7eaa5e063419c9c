// Package compose turns buffer lines and cursor positions into display
// lines with cursor markers embedded.
//
// Composition is pure. It reads the line source and cursor positions and
// never mutates either.
package compose

import (
	"sort"
	"strings"

	"github.com/dshills/barcode/internal/engine/buffer"
)

// DefaultMarker is the glyph drawn at cursor positions.
const DefaultMarker = '│'

// LineSource provides the lines to compose.
// *buffer.Buffer satisfies it.
type LineSource interface {
	LineCount() int
	LineRunes(y int) []rune
}

// UnitKind classifies a display unit.
type UnitKind uint8

const (
	UnitText            UnitKind = iota // a rune from the buffer
	UnitPadding                         // space filling up to a cursor past the line end
	UnitPrimaryCursor                   // marker of the primary cursor
	UnitSecondaryCursor                 // marker of a secondary cursor
)

// IsCursor reports whether the unit is a cursor marker.
func (k UnitKind) IsCursor() bool {
	return k == UnitPrimaryCursor || k == UnitSecondaryCursor
}

// Unit is one displayed rune.
type Unit struct {
	Rune rune
	Kind UnitKind
}

// Line is a composed display line.
type Line []Unit

// String concatenates the runes of the line, markers included.
func (l Line) String() string {
	var sb strings.Builder
	for _, u := range l {
		sb.WriteRune(u.Rune)
	}
	return sb.String()
}

// Composer builds display lines.
type Composer struct {
	marker rune
}

// New creates a composer that draws cursors with marker.
// A zero marker selects DefaultMarker.
func New(marker rune) *Composer {
	if marker == 0 {
		marker = DefaultMarker
	}
	return &Composer{marker: marker}
}

// Marker returns the cursor glyph.
func (c *Composer) Marker() rune {
	return c.marker
}

// Compose returns one display line per source line. Cursors are given in
// set order; index 0 is the primary cursor.
//
// Markers on a line are inserted left to right. Each marker already placed
// pushes the following ones one unit to the right. Cursors sharing a column
// keep set order, so the primary marker comes first. A cursor past the end
// of its line is reached by padding with spaces.
func (c *Composer) Compose(src LineSource, cursors []buffer.Point) []Line {
	byLine := make(map[int][]int)
	for i, p := range cursors {
		byLine[p.Line] = append(byLine[p.Line], i)
	}

	n := src.LineCount()
	out := make([]Line, n)
	for y := 0; y < n; y++ {
		runes := src.LineRunes(y)
		line := make(Line, len(runes), len(runes)+len(byLine[y]))
		for i, r := range runes {
			line[i] = Unit{Rune: r, Kind: UnitText}
		}

		onLine := byLine[y]
		sort.SliceStable(onLine, func(a, b int) bool {
			return cursors[onLine[a]].Column < cursors[onLine[b]].Column
		})

		for offset, idx := range onLine {
			kind := UnitSecondaryCursor
			if idx == 0 {
				kind = UnitPrimaryCursor
			}
			marker := Unit{Rune: c.marker, Kind: kind}

			at := max(cursors[idx].Column, 0) + offset
			for len(line) < at {
				line = append(line, Unit{Rune: ' ', Kind: UnitPadding})
			}
			line = append(line, Unit{})
			copy(line[at+1:], line[at:])
			line[at] = marker
		}
		out[y] = line
	}
	return out
}

// ComposeStrings is Compose with every line rendered to a string.
func (c *Composer) ComposeStrings(src LineSource, cursors []buffer.Point) []string {
	lines := c.Compose(src, cursors)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}
