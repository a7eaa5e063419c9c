package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrReadOnly indicates an edit was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")
)
