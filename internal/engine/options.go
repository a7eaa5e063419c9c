package engine

import "github.com/dshills/barcode/internal/engine/buffer"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithBuffer sets the initial buffer of the engine.
func WithBuffer(buf *buffer.Buffer) Option {
	return func(e *Engine) {
		if buf != nil {
			e.buf = buf
		}
	}
}

// WithReadOnly rejects all edits when enabled.
func WithReadOnly(readOnly bool) Option {
	return func(e *Engine) {
		e.readOnly = readOnly
	}
}
