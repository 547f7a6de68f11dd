// Package field provides the N-dimensional arrays that wavevectors,
// energies and Hamiltonians travel in, and the adapter that lifts a
// single-wavevector lattice function onto whole arrays.
//
// A lattice function takes one wavevector (kx, ky) and returns a value V:
// a scalar, a band vector or a small matrix, the same shape for every input.
// [Vectorize] turns it into an [Evaluator] that accepts two coordinate
// arrays of identical shape S and returns an array of shape shape(V)+S.
// Band dimensions come first:
//
//	disp := field.Vectorize(func(kx, ky float64) *field.Array[float64] {
//		return field.Vector(-e(kx, ky), 0, e(kx, ky))
//	})
//	out, err := disp(kx, ky) // shape (3, ny, nx) for (ny, nx) inputs
//
// Mismatched input shapes are reported as [ErrShapeMismatch]; the
// evaluator never panics on user input.
//
// # Thread Safety
//
// Arrays are plain values without internal locking. Evaluators may call the
// wrapped function from several goroutines at once, so that function must be
// pure. The output is identical to a sequential evaluation.
package field
