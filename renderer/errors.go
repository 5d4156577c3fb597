package renderer

import "errors"

var (
	ErrNoShader         = errors.New("renderer: no shader defined")
	ErrInvalidFrameSize = errors.New("renderer: frame dimensions must be positive")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
