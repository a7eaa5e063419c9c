package renderer

import (
	"sync"

	"github.com/dshills/barcode/internal/engine/buffer"
	"github.com/dshills/barcode/internal/renderer/backend"
	"github.com/dshills/barcode/internal/renderer/compose"
	"github.com/dshills/barcode/internal/renderer/core"
	"github.com/dshills/barcode/internal/renderer/gutter"
	"github.com/dshills/barcode/internal/renderer/overlay"
	"github.com/dshills/barcode/internal/renderer/viewport"
)

// Renderer is the main rendering facade.
type Renderer struct {
	mu sync.Mutex

	opts     Options
	backend  backend.Backend
	composer *compose.Composer
	gutter   *gutter.Gutter
	viewport *viewport.Viewport
	overlays *overlay.Manager

	frameCount uint64
}

// New creates a new renderer painting onto b.
func New(b backend.Backend, opts Options) *Renderer {
	r := &Renderer{
		backend:  b,
		viewport: viewport.NewViewport(),
		overlays: overlay.NewManager(),
	}
	r.applyOptions(opts)
	return r
}

func (r *Renderer) applyOptions(opts Options) {
	if opts.ScrollMargin < 0 {
		opts.ScrollMargin = 0
	}
	r.opts = opts
	r.composer = compose.New(opts.Marker)
	r.gutter = gutter.New(opts.Gutter)
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// SetOptions replaces the options. The change shows on the next frame.
func (r *Renderer) SetOptions(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applyOptions(opts)
}

// Viewport returns the viewport that follows the primary cursor.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// Overlays returns the message and prompt state drawn over the text.
func (r *Renderer) Overlays() *overlay.Manager {
	return r.overlays
}

// Backend returns the backend frames are painted on.
func (r *Renderer) Backend() backend.Backend {
	return r.backend
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

// Render paints one frame of src with the given cursors, primary first.
func (r *Renderer) Render(src compose.LineSource, cursors []buffer.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	if len(cursors) > 0 {
		r.viewport.Adjust(cursors[0].Line, height, r.opts.ScrollMargin)
	}

	primaryLine := -1
	if len(cursors) > 0 {
		primaryLine = cursors[0].Line
	}

	lines := r.composer.Compose(src, cursors)
	skip := r.viewport.Skip()

	r.backend.Clear()
	for row := 0; row < height && skip+row < len(lines); row++ {
		y := skip + row
		x := r.drawCells(0, row, width, r.gutter.RenderLine(y+1, y == primaryLine))
		r.drawLine(x, row, width, lines[y])
	}

	r.drawOverlays(width, height)

	r.backend.HideCursor()
	r.backend.Show()
	r.frameCount++
}

func (r *Renderer) drawCells(x, y, width int, cells []core.Cell) int {
	for _, c := range cells {
		if c.IsContinuation() {
			x++
			continue
		}
		if x < width {
			r.backend.SetCell(x, y, c)
		}
		x++
	}
	return x
}

// drawLine paints composed units starting at column x. Runes without a
// display width are drawn as a single space.
func (r *Renderer) drawLine(x, y, width int, line compose.Line) {
	for _, u := range line {
		if x >= width {
			return
		}

		ch := u.Rune
		if core.RuneWidth(ch) == 0 {
			ch = ' '
		}
		cell := core.NewStyledCell(ch, r.unitStyle(u.Kind))
		r.backend.SetCell(x, y, cell)
		x += cell.Width
	}
}

func (r *Renderer) unitStyle(k compose.UnitKind) core.Style {
	switch k {
	case compose.UnitPrimaryCursor:
		return r.opts.PrimaryCursorStyle
	case compose.UnitSecondaryCursor:
		return r.opts.SecondaryCursorStyle
	default:
		return r.opts.TextStyle
	}
}

func (r *Renderer) drawOverlays(width, height int) {
	if msg, ok := r.overlays.Message(); ok {
		x, y, w := overlay.MessageOrigin(width, msg.Text)
		overlay.DrawBox(r.backend, x, y, w, msg.Kind.Title(), msg.Text, r.opts.Overlays.ForMessage(msg.Kind))
	}

	if p, ok := r.overlays.Prompt(); ok {
		x, y, w := overlay.PromptOrigin(width, height)
		r.backend.Fill(core.RectFromSize(y, x, 3, w), core.EmptyCell())
		overlay.DrawBox(r.backend, x, y, w, p.Title, p.Input, r.opts.Overlays.Prompt)
	}
}
