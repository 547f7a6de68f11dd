package dos

import "errors"

var (
	// ErrNoGDOS indicates a lattice without a generalized density of states.
	ErrNoGDOS = errors.New("dos: generalized DOS not defined for this lattice")

	// ErrSteps indicates an integration grid with fewer than one interval.
	ErrSteps = errors.New("dos: integration needs at least one step")
)
