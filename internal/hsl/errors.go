package hsl

import "errors"

var (
	// ErrUnknownPoint indicates a path label missing from the point set.
	ErrUnknownPoint = errors.New("hsl: unknown high-symmetry point")

	// ErrShortPath indicates a path with fewer than two points.
	ErrShortPath = errors.New("hsl: path needs at least two points")

	// ErrPointCount indicates a per-segment sample count below one.
	ErrPointCount = errors.New("hsl: points per segment must be positive")
)
