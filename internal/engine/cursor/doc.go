// Package cursor provides cursor positioning and multi-cursor coordination.
//
// A Cursor is an (X, Y) position over a line store where X is a rune column
// and Y a line index. Every operation keeps the cursor inside the store:
// X never exceeds the length of line Y and Y never reaches the line count.
//
// A CursorSet holds one or more cursors. Index 0 is the primary cursor; it
// alone responds to navigation, and secondary cursors are only created by
// DuplicatePrimary and only removed by Collapse.
//
// Multi-Cursor Edits:
//
// When an edit is applied to every cursor, each single-cursor edit is
// described by an Edit:
//
//   - Characters are inserted in ascending (line, column) order, each at
//     the column its cursor held before the batch. Other cursors are not
//     shifted, so cursors at 2 and 5 on "abcdefgh" give "abXcdXefgh".
//   - Newlines and backspaces are applied in descending (line, column)
//     order and every other cursor is shifted through Transform, so
//     structural changes never move lines still waiting to be processed.
//   - Cursors sharing a position form one group. The edit is applied once
//     and the whole group moves to the resulting position.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromLines([]string{"abcdefgh"}, "")
//	cs := cursor.NewCursorSet(cursor.New(2, 0))
//	cs.DuplicatePrimary()
//	cs.MoveRight(buf) // only the primary moves
//	cs.InsertChar(buf, 'X')
package cursor
