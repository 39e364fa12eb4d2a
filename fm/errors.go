package fm

import "errors"

var (
	// ErrInvalidDimension is returned by New when n <= 0.
	ErrInvalidDimension = errors.New("fm: dimension must be > 0")

	// ErrInputShapeMismatch is returned by Update when the observation
	// length does not equal the accumulator's configured dimension.
	ErrInputShapeMismatch = errors.New("fm: input length does not match accumulator dimension")
)
