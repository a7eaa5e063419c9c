// Package buffer provides the line store that backs an editing session.
//
// A Buffer is an ordered list of lines, each held as a slice of runes so
// that columns address Unicode scalar values rather than bytes. The store
// always contains at least one line; an empty document is a single empty
// line.
//
// The buffer exposes three structural primitives:
//
//   - InsertCharAt inserts a single rune, growing the line list if needed
//   - InsertNewlineAt splits a line in two
//   - RemoveCharBefore deletes the rune left of a position or merges a line
//     into its predecessor
//
// None of the primitives fail. Out-of-range columns are clamped to the line
// length, and each primitive reports where a caller standing at the edit
// position ends up. Repositioning cursors is left to the cursor package.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromLines([]string{"hello"}, "notes.txt")
//	p := buf.InsertNewlineAt(buffer.Point{Line: 0, Column: 2})
//	// buf.Lines() == []string{"he", "llo"}, p == Point{Line: 1, Column: 0}
package buffer
