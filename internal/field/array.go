package field

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the element constraint for arrays.
type Scalar interface {
	constraints.Float | constraints.Complex
}

// Array is a dense row-major N-d array. The zero-dimensional array holds a
// single scalar.
type Array[T Scalar] struct {
	shape []int
	data  []T
}

func New[T Scalar](shape ...int) (*Array[T], error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	return &Array[T]{shape: cloneInts(shape), data: make([]T, n)}, nil
}

// FromSlice copies data into a new array of the given shape.
func FromSlice[T Scalar](data []T, shape ...int) (*Array[T], error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrBadShape, len(data), shape)
	}
	d := make([]T, n)
	copy(d, data)
	return &Array[T]{shape: cloneInts(shape), data: d}, nil
}

// Of returns a zero-dimensional array holding v.
func Of[T Scalar](v T) *Array[T] {
	return &Array[T]{shape: []int{}, data: []T{v}}
}

// Vector returns a one-dimensional array holding a copy of vals.
func Vector[T Scalar](vals ...T) *Array[T] {
	d := make([]T, len(vals))
	copy(d, vals)
	return &Array[T]{shape: []int{len(vals)}, data: d}
}

func zeros[T Scalar](shape []int) *Array[T] {
	n, _ := sizeOf(shape)
	return &Array[T]{shape: shape, data: make([]T, n)}
}

func (a *Array[T]) Shape() []int { return cloneInts(a.shape) }
func (a *Array[T]) Ndim() int    { return len(a.shape) }
func (a *Array[T]) Size() int    { return len(a.data) }

// Data returns a copy of the elements in row-major order.
func (a *Array[T]) Data() []T {
	d := make([]T, len(a.data))
	copy(d, a.data)
	return d
}

// Item returns the only element of a size-one array.
func (a *Array[T]) Item() (T, error) {
	if len(a.data) != 1 {
		var zero T
		return zero, fmt.Errorf("%w: Item on array of shape %v", ErrBadShape, a.shape)
	}
	return a.data[0], nil
}

// At returns the element at idx. Like slice indexing it panics when idx is
// out of range.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.offset(idx)]
}

func (a *Array[T]) Set(v T, idx ...int) {
	a.data[a.offset(idx)] = v
}

func (a *Array[T]) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("field: %d indices for %d-d array", len(idx), len(a.shape)))
	}
	off := 0
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			panic(fmt.Sprintf("field: index %d out of range for axis %d of size %d", j, i, a.shape[i]))
		}
		off = off*a.shape[i] + j
	}
	return off
}

func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{shape: cloneInts(a.shape), data: a.Data()}
}

// Reshape returns a copy with a new shape of the same size.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	return FromSlice(a.data, shape...)
}

// Map applies fn elementwise and returns a new array of the same shape.
func Map[T, U Scalar](a *Array[T], fn func(T) U) *Array[U] {
	out := &Array[U]{shape: cloneInts(a.shape), data: make([]U, len(a.data))}
	for i, v := range a.data {
		out.data[i] = fn(v)
	}
	return out
}

// Meshgrid returns coordinate matrices of shape (len(y), len(x)) with
// X[i][j] = x[j] and Y[i][j] = y[i].
func Meshgrid(x, y []float64) (*Array[float64], *Array[float64]) {
	nx, ny := len(x), len(y)
	X := zeros[float64]([]int{ny, nx})
	Y := zeros[float64]([]int{ny, nx})
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			X.data[i*nx+j] = x[j]
			Y.data[i*nx+j] = y[i]
		}
	}
	return X, Y
}

func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sizeOf(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", ErrBadShape, shape)
		}
		n *= d
	}
	return n, nil
}

func cloneInts(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}
