package renderer

import (
	"github.com/dshills/barcode/internal/renderer/compose"
	"github.com/dshills/barcode/internal/renderer/core"
	"github.com/dshills/barcode/internal/renderer/gutter"
	"github.com/dshills/barcode/internal/renderer/overlay"
	"github.com/dshills/barcode/internal/renderer/viewport"
)

// Options configures the renderer.
type Options struct {
	// ScrollMargin is the number of lines kept between the primary cursor
	// and the top or bottom edge.
	ScrollMargin int

	// Marker is the glyph drawn at cursor positions.
	Marker rune

	// Gutter configures the line-number column.
	Gutter gutter.Config

	// TextStyle styles buffer text.
	TextStyle core.Style

	// PrimaryCursorStyle styles the primary cursor marker.
	PrimaryCursorStyle core.Style

	// SecondaryCursorStyle styles secondary cursor markers.
	SecondaryCursorStyle core.Style

	// Overlays styles message and prompt boxes.
	Overlays overlay.Styles
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		ScrollMargin:         viewport.DefaultMargin,
		Marker:               compose.DefaultMarker,
		Gutter:               gutter.DefaultConfig(),
		TextStyle:            core.DefaultStyle(),
		PrimaryCursorStyle:   core.NewStyle(core.ColorDarkGray),
		SecondaryCursorStyle: core.NewStyle(core.ColorBlue),
		Overlays:             overlay.DefaultStyles(),
	}
}
