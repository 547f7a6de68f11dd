package field

import "fmt"

// PointFunc evaluates a lattice quantity at one wavevector.
type PointFunc[T Scalar] func(kx, ky float64) *Array[T]

// Evaluator is a PointFunc lifted onto coordinate arrays.
type Evaluator[T Scalar] func(kx, ky *Array[float64]) (*Array[T], error)

// Vectorize lifts f onto arrays. For inputs of shape S and values of shape V
// the result has shape V+S and element [v..., s...] equals f(kx[s], ky[s])[v...].
// For empty inputs V is taken from f(0, 0).
func Vectorize[T Scalar](f PointFunc[T]) Evaluator[T] {
	return func(kx, ky *Array[float64]) (*Array[T], error) {
		if err := checkPair(kx, ky); err != nil {
			return nil, err
		}

		n := kx.Size()
		vals := make([]*Array[T], n)
		parallelFor(n, minChunk, func(start, end int) {
			for i := start; i < end; i++ {
				vals[i] = f(kx.data[i], ky.data[i])
			}
		})

		var first *Array[T]
		if n > 0 {
			first = vals[0]
		} else {
			first = f(0, 0)
		}
		if first == nil {
			return nil, fmt.Errorf("%w: nil value", ErrValueShape)
		}
		vshape := first.shape
		vsize := len(first.data)

		out := zeros[T](append(cloneInts(vshape), kx.shape...))
		for i, v := range vals {
			if v == nil || !SameShape(v.shape, vshape) {
				return nil, fmt.Errorf("%w: point %d differs from %v", ErrValueShape, i, vshape)
			}
			for b := 0; b < vsize; b++ {
				out.data[b*n+i] = v.data[b]
			}
		}
		return out, nil
	}
}

// Lift is Vectorize for scalar-valued functions: the result has the shape of
// the inputs.
func Lift[T Scalar](f func(kx, ky float64) T) Evaluator[T] {
	return func(kx, ky *Array[float64]) (*Array[T], error) {
		if err := checkPair(kx, ky); err != nil {
			return nil, err
		}

		out := zeros[T](cloneInts(kx.shape))
		parallelFor(len(out.data), minChunk, func(start, end int) {
			for i := start; i < end; i++ {
				out.data[i] = f(kx.data[i], ky.data[i])
			}
		})
		return out, nil
	}
}

func checkPair(kx, ky *Array[float64]) error {
	if kx == nil || ky == nil {
		return ErrNilArray
	}
	if !SameShape(kx.shape, ky.shape) {
		return fmt.Errorf("%w: kx %v, ky %v", ErrShapeMismatch, kx.shape, ky.shape)
	}
	return nil
}
