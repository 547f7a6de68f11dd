package lattice

import "errors"

// Configuration errors.
var (
	// ErrUnknownBravais indicates a Bravais tag outside the supported set.
	ErrUnknownBravais = errors.New("lattice: unknown bravais lattice")

	// ErrSingularBasis indicates collinear (or zero) primitive vectors.
	ErrSingularBasis = errors.New("lattice: primitive vectors do not span the plane")

	// ErrBadBands indicates a band count below one.
	ErrBadBands = errors.New("lattice: band count must be positive")

	// ErrEnergyBounds indicates emin >= emax or a non-finite bound.
	ErrEnergyBounds = errors.New("lattice: energy bounds must satisfy emin < emax")
)
