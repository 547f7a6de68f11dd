package dos

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

const (
	agmTol  = 1e-15
	agmIter = 64
)

// KComplement returns the complete elliptic integral of the first kind at
// parameter m = 1-p. It is evaluated from the complementary parameter p
// through the arithmetic-geometric mean, K = π / 2·AGM(1, √p), so it stays
// accurate for p down to the smallest subnormal. KComplement(0) is +Inf.
func KComplement(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return math.NaN()
	case p == 0:
		return math.Inf(1)
	}

	a, b := 1.0, math.Sqrt(p)
	for i := 0; i < agmIter && math.Abs(a-b) > agmTol*a; i++ {
		a, b = 0.5*(a+b), math.Sqrt(a*b)
	}
	return math.Pi / (a + b)
}

// CompleteE is the complete elliptic integral of the second kind, 0 ≤ m ≤ 1.
func CompleteE(m float64) float64 {
	if m == 1 {
		return 1
	}
	return mathext.CompleteE(m)
}

// singularK is K at the smallest positive offset from m = 1.
var singularK = KComplement(math.SmallestNonzeroFloat64)
