package dos

import "math"

const pi2 = math.Pi * math.Pi

// Square lattice, E = -2cos kx - 2cos ky.
const (
	SquareMin = -4.0
	SquareMax = 4.0

	// SquareGDOSAtZero is the E → 0 limit of SquareGeneral, 4/π².
	SquareGDOSAtZero = 4 / pi2
)

// Triangular lattice, E = -2cos kx - 4cos(kx/2)cos(√3ky/2).
const (
	TriangularMin = -6.0
	TriangularMax = 3.0

	// TriangularVanHove is the saddle-point energy at M.
	TriangularVanHove = 2.0
)

// Dice lattice: a flat band at 0 and two bands ±√2|f(k)|.
var (
	DiceMax = 3 * math.Sqrt2
	DiceMin = -DiceMax
)

var (
	SquareProxy     = singularK / (2 * pi2)
	TriangularProxy = singularK / (2 * pi2)
	DiceProxy       = math.Sqrt2 * TriangularProxy
)

// SquareDensity is K(1 - E²/16) / 2π², divergent at E = 0.
func SquareDensity(e float64) float64 {
	return KComplement(e*e/16) / (2 * pi2)
}

// SquareGeneral is the velocity-weighted density ∫(∂E/∂kx)² δ(E-ε(k)), which
// equals the band curvature ∂²E/∂kx² integrated over the states below E:
//
//	g(E) = 4/π² [E(1-p) - p·K(1-p)],  p = E²/16.
//
// The formula is 0·∞ at E = 0, where the limit is used instead.
func SquareGeneral(e float64) float64 {
	if e == 0 {
		return SquareGDOSAtZero
	}
	p := e * e / 16
	g := 4 / pi2 * (CompleteE(1-p) - p*KComplement(p))
	return math.Max(g, 0)
}

// TriangularDensity is K(z1/z0) / π²√z0 with r = √(3-E),
// a = (3-r)(r+1)³/4, b = 4r and (z0, z1) = (b, a) below the van Hove energy,
// (a, b) above it.
func TriangularDensity(e float64) float64 {
	r := math.Sqrt(3 - e)
	a := (3 - r) * (r + 1) * (r + 1) * (r + 1) / 4
	b := 4 * r

	z0, z1 := b, a
	if e > TriangularVanHove {
		z0, z1 = a, b
	}

	p := math.Min(math.Max((z0-z1)/z0, 0), 1)
	return KComplement(p) / (math.Sqrt(z0) * pi2)
}

// DiceDensity counts the two dispersive bands, |E|·ρ_tri(3 - E²/2). The flat
// band makes E = 0 divergent.
func DiceDensity(e float64) float64 {
	if e == 0 {
		return math.Inf(1)
	}
	et := math.Max(3-e*e/2, TriangularMin)
	return math.Abs(e) * TriangularDensity(et)
}

func Square() *Solver {
	return &Solver{
		Name:    "square",
		Min:     SquareMin,
		Max:     SquareMax,
		Density: SquareDensity,
		Proxy:   SquareProxy,
		General: SquareGeneral,
	}
}

func Triangular() *Solver {
	return &Solver{
		Name:    "triangular",
		Min:     TriangularMin,
		Max:     TriangularMax,
		Density: TriangularDensity,
		Proxy:   TriangularProxy,
	}
}

func Dice() *Solver {
	return &Solver{
		Name:    "dice",
		Min:     DiceMin,
		Max:     DiceMax,
		Density: DiceDensity,
		Proxy:   DiceProxy,
	}
}
