package plot

import "errors"

var (
	// ErrInvalidSeed is returned when a hash seed cannot be decoded.
	ErrInvalidSeed = errors.New("plot: invalid seed")

	// ErrShapeMismatch is returned when combining grids of different layout.
	ErrShapeMismatch = errors.New("plot: grid shape mismatch")
)
