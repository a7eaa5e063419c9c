package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithPath sets the file the buffer is persisted to.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}
