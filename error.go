package charstream

import "errors"

var (
	ErrOutOfBounds = errors.New("out of bounds")
)
