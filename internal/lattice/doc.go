// Package lattice holds the static description of a two-dimensional Bravais
// lattice used by the tight-binding models.
//
// The package defines:
//
//   - [Bravais]: the Bravais class tag (tetragonal or hexagonal primitive)
//   - [Vec2]: a real-space or reciprocal-space 2-vector
//   - [Config]: primitive vectors, derived reciprocal vectors, band count
//     and energy bounds of one lattice type
//
// # Example
//
//	cfg, err := lattice.New(lattice.Params{
//		Name:    "square",
//		Bravais: lattice.TetragonalPrimitive,
//		A1:      lattice.Vec2{1, 0},
//		A2:      lattice.Vec2{0, 1},
//		Bands:   1,
//		EMin:    -4,
//		EMax:    4,
//	})
//	b1, b2 := cfg.Reciprocal() // (2π, 0), (0, 2π)
//
// # Thread Safety
//
// A Config never changes after [New] returns, so one value may be shared by
// any number of goroutines without locking.
package lattice
