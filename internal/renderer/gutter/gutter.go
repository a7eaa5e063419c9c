// Package gutter renders the line-number column to the left of the text.
package gutter

import (
	"strconv"

	"github.com/dshills/barcode/internal/renderer/core"
)

// DefaultSeparator follows the line number on every row.
const DefaultSeparator = "   │   "

// Config holds gutter configuration.
type Config struct {
	// NumberWidth is the width line numbers are right-aligned to.
	NumberWidth int

	// Separator is drawn after the number.
	Separator string

	// NumberStyle styles line numbers other than the current line.
	NumberStyle core.Style

	// CurrentStyle styles the number of the primary cursor's line.
	CurrentStyle core.Style

	// SeparatorStyle styles the separator.
	SeparatorStyle core.Style
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		NumberWidth:    6,
		Separator:      DefaultSeparator,
		NumberStyle:    core.NewStyle(core.ColorGray),
		CurrentStyle:   core.NewStyle(core.ColorDarkYellow).Bold(),
		SeparatorStyle: core.NewStyle(core.ColorGray),
	}
}

// Gutter renders line-number cells.
type Gutter struct {
	config Config
}

// New creates a gutter. A non-positive width falls back to the default.
func New(config Config) *Gutter {
	if config.NumberWidth <= 0 {
		config.NumberWidth = DefaultConfig().NumberWidth
	}
	return &Gutter{config: config}
}

// Config returns the gutter configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// Width returns the number of columns the gutter occupies. Text starts at
// this column.
func (g *Gutter) Width() int {
	return g.config.NumberWidth + core.StringWidth(g.config.Separator)
}

// Format returns the gutter text for 1-based line number n.
func (g *Gutter) Format(n int) string {
	return PadLeft(strconv.Itoa(n), g.config.NumberWidth) + g.config.Separator
}

// RenderLine returns the styled cells for 1-based line number n.
func (g *Gutter) RenderLine(n int, current bool) []core.Cell {
	style := g.config.NumberStyle
	if current {
		style = g.config.CurrentStyle
	}

	cells := core.CellsFromString(PadLeft(strconv.Itoa(n), g.config.NumberWidth), style)
	return append(cells, core.CellsFromString(g.config.Separator, g.config.SeparatorStyle)...)
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}
