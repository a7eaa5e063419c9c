// Package renderer paints editor frames onto a backend.
//
// A frame is built from three layers, bottom to top:
//
//   - the gutter with right-aligned line numbers
//   - the composed text lines with cursor markers embedded
//   - overlay boxes for status messages and the input prompt
//
// Before painting, the viewport is adjusted to follow the primary cursor,
// and only the lines from the viewport start onward are drawn.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(buf, cursors)
package renderer
