package synth

import "errors"

var (
	// ErrInvalidParameter reports a note request that cannot be rendered.
	ErrInvalidParameter = errors.New("synth: invalid parameter")
	// ErrLengthMismatch reports signal and envelope buffers of different
	// lengths.
	ErrLengthMismatch = errors.New("synth: buffer length mismatch")
)
