package buffer

import (
	"strings"
	"sync"
)

// Buffer is a line-oriented text store.
// It always holds at least one line. All methods are thread-safe.
type Buffer struct {
	mu       sync.RWMutex
	lines    [][]rune
	path     string
	revision uint64
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines: [][]rune{{}},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromLines creates a buffer from the given lines.
// An empty slice yields a buffer with one empty line.
func NewBufferFromLines(lines []string, path string, opts ...Option) *Buffer {
	b := NewBuffer(append([]Option{WithPath(path)}, opts...)...)
	if len(lines) == 0 {
		return b
	}

	b.lines = make([][]rune, len(lines))
	for i, l := range lines {
		b.lines[i] = []rune(l)
	}
	return b
}

// Path returns the file path the buffer is associated with.
// An empty path means the buffer has never been saved.
func (b *Buffer) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// SetPath associates the buffer with a file path.
func (b *Buffer) SetPath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.path = path
}

// Revision returns a counter that increases with every mutation.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineCount returns the number of lines. It is never less than 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineLen returns the length of line y in runes.
// Returns 0 if y is out of range.
func (b *Buffer) LineLen(y int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if y < 0 || y >= len(b.lines) {
		return 0
	}
	return len(b.lines[y])
}

// Line returns the text of line y.
// Returns an empty string if y is out of range.
func (b *Buffer) Line(y int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if y < 0 || y >= len(b.lines) {
		return ""
	}
	return string(b.lines[y])
}

// LineRunes returns a copy of line y as runes.
// Returns nil if y is out of range.
func (b *Buffer) LineRunes(y int) []rune {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if y < 0 || y >= len(b.lines) {
		return nil
	}
	out := make([]rune, len(b.lines[y]))
	copy(out, b.lines[y])
	return out
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the content joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// ClampPoint returns p constrained to a valid position in the buffer.
func (b *Buffer) ClampPoint(p Point) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clampPointLocked(p)
}

func (b *Buffer) clampPointLocked(p Point) Point {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if n := len(b.lines[p.Line]); p.Column > n {
		p.Column = n
	}
	return p
}

// InsertNewlineAt splits line pos.Line at pos.Column. The text right of the
// column becomes a new line directly below. When pos.Line is past the last
// line an empty line is appended instead. Returns the position a caller at
// pos moves to, the start of the new line.
func (b *Buffer) InsertNewlineAt(pos Point) Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revision++

	if pos.Line >= len(b.lines) {
		b.lines = append(b.lines, []rune{})
		return Point{Line: len(b.lines) - 1, Column: 0}
	}
	pos = b.clampPointLocked(pos)

	line := b.lines[pos.Line]
	head := make([]rune, pos.Column)
	copy(head, line[:pos.Column])
	tail := make([]rune, len(line)-pos.Column)
	copy(tail, line[pos.Column:])

	b.lines[pos.Line] = head
	b.lines = append(b.lines, nil)
	copy(b.lines[pos.Line+2:], b.lines[pos.Line+1:])
	b.lines[pos.Line+1] = tail

	return Point{Line: pos.Line + 1, Column: 0}
}

// InsertCharAt inserts ch at pos. Empty lines are appended until pos.Line
// exists, and the column is clamped to the line length.
func (b *Buffer) InsertCharAt(pos Point, ch rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revision++

	if pos.Line < 0 {
		pos.Line = 0
	}
	for pos.Line >= len(b.lines) {
		b.lines = append(b.lines, []rune{})
	}
	pos = b.clampPointLocked(pos)

	line := b.lines[pos.Line]
	line = append(line, 0)
	copy(line[pos.Column+1:], line[pos.Column:])
	line[pos.Column] = ch
	b.lines[pos.Line] = line
}

// RemoveCharBefore deletes the rune left of pos and returns the position a
// caller at pos moves to. At column 0 the line is merged onto the end of the
// previous line. At (0,0) nothing changes.
func (b *Buffer) RemoveCharBefore(pos Point) Point {
	b.mu.Lock()
	defer b.mu.Unlock()

	pos = b.clampPointLocked(pos)
	switch {
	case pos.Column > 0:
		b.revision++
		line := b.lines[pos.Line]
		b.lines[pos.Line] = append(line[:pos.Column-1], line[pos.Column:]...)
		return Point{Line: pos.Line, Column: pos.Column - 1}

	case pos.Line > 0:
		b.revision++
		prev := b.lines[pos.Line-1]
		joinAt := len(prev)
		b.lines[pos.Line-1] = append(prev, b.lines[pos.Line]...)
		b.lines = append(b.lines[:pos.Line], b.lines[pos.Line+1:]...)
		return Point{Line: pos.Line - 1, Column: joinAt}

	default:
		return pos
	}
}
