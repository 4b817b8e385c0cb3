package cursor

import (
	"github.com/nickrtorres/charstream"
)

var (
	ErrOutOfBounds = charstream.ErrOutOfBounds
)
