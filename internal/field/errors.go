package field

import "errors"

var (
	// ErrShapeMismatch indicates paired coordinate arrays of different shape.
	ErrShapeMismatch = errors.New("field: kx and ky shape mismatch")

	// ErrValueShape indicates a pointwise function whose result shape varies
	// between wavevectors.
	ErrValueShape = errors.New("field: pointwise value shape is not constant")

	// ErrBadShape indicates a negative dimension or a data length that does
	// not match the requested shape.
	ErrBadShape = errors.New("field: invalid shape")

	// ErrNilArray indicates a nil array argument.
	ErrNilArray = errors.New("field: nil array")
)
