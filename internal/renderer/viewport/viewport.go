// Package viewport tracks which part of the buffer is visible and scrolls it
// to follow the primary cursor.
package viewport

import "sync"

// DefaultMargin is the number of lines kept between the primary cursor and
// the window edge.
const DefaultMargin = 4

// Viewport holds the first visible line of the window.
// ViewStart is 1-based and never below 1.
type Viewport struct {
	mu        sync.RWMutex
	viewStart int
}

// NewViewport creates a viewport showing the first line.
func NewViewport() *Viewport {
	return &Viewport{viewStart: 1}
}

// ViewStart returns the 1-based number of the first visible line.
func (v *Viewport) ViewStart() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.viewStart
}

// SetViewStart moves the window so line n is at the top.
// Values below 1 are clamped to 1.
func (v *Viewport) SetViewStart(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewStart = max(n, 1)
}

// Reset scrolls back to the first line.
func (v *Viewport) Reset() {
	v.SetViewStart(1)
}

// Skip returns the number of buffer lines above the window.
func (v *Viewport) Skip() int {
	return v.ViewStart() - 1
}

// Adjust scrolls by at most one line so that the primary cursor on line
// primaryY (0-based) stays margin lines away from the window edges.
// Repeated calls converge as the cursor keeps moving.
func (v *Viewport) Adjust(primaryY, visibleRows, margin int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if primaryY+margin-v.viewStart+1 > visibleRows {
		v.viewStart++
	}

	nearTop := primaryY >= 0 && primaryY <= margin
	if primaryY < margin+v.viewStart && !nearTop && v.viewStart > 1 {
		v.viewStart--
	}
}

// Visible reports whether 0-based line y falls inside a window of rows
// lines.
func (v *Viewport) Visible(y, rows int) bool {
	skip := v.Skip()
	return y >= skip && y < skip+rows
}
