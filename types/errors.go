package types

import "errors"

var (
	ErrVectorComponentCount = errors.New("types: unexpected number of vector components")
)
