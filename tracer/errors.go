package tracer

import "errors"

var (
	ErrNotAttached     = errors.New("tracer: tracer not attached to a frame")
	ErrFrameSize       = errors.New("tracer: frame buffer does not match frame dimensions")
	ErrBlockOutOfRange = errors.New("tracer: block exceeds frame bounds")
)
