package lattice

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

type Bravais uint8

const (
	TetragonalPrimitive Bravais = iota + 1
	HexagonalPrimitive
)

func (b Bravais) String() string {
	switch b {
	case TetragonalPrimitive:
		return "tp"
	case HexagonalPrimitive:
		return "hp"
	default:
		return fmt.Sprintf("bravais(%d)", uint8(b))
	}
}

// Valid reports whether b is one of the supported classes.
func (b Bravais) Valid() bool {
	return b == TetragonalPrimitive || b == HexagonalPrimitive
}

// ParseBravais accepts the short tags ("tp", "hp") as well as the long
// aliases the models are known by.
func ParseBravais(s string) (Bravais, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tp", "t", "square", "tetragonal":
		return TetragonalPrimitive, nil
	case "hp", "h", "hexagonal", "triangular":
		return HexagonalPrimitive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBravais, s)
	}
}

type Vec2 [2]float64

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v[0] + o[0], v[1] + o[1]} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v[0] - o[0], v[1] - o[1]} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v[0] * f, v[1] * f} }
func (v Vec2) Dot(o Vec2) float64   { return v[0]*o[0] + v[1]*o[1] }
func (v Vec2) Norm() float64        { return math.Hypot(v[0], v[1]) }

// DotK is v·(kx, ky).
func (v Vec2) DotK(kx, ky float64) float64 { return v[0]*kx + v[1]*ky }

// Params is the input to New. Everything else in a Config is derived.
type Params struct {
	Name    string
	Bravais Bravais
	A1, A2  Vec2
	Bands   int
	EMin    float64
	EMax    float64
}

// Config is the immutable description of one lattice type.
type Config struct {
	name       string
	bravais    Bravais
	primitive  [2]Vec2
	reciprocal [2]Vec2
	bands      int
	emin, emax float64
}

func New(p Params) (*Config, error) {
	if !p.Bravais.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBravais, p.Bravais)
	}
	if p.Bands < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBands, p.Bands)
	}
	if math.IsNaN(p.EMin) || math.IsNaN(p.EMax) || math.IsInf(p.EMin, 0) || math.IsInf(p.EMax, 0) || p.EMin >= p.EMax {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrEnergyBounds, p.EMin, p.EMax)
	}

	recip, err := reciprocal(p.A1, p.A2)
	if err != nil {
		return nil, err
	}

	return &Config{
		name:       p.Name,
		bravais:    p.Bravais,
		primitive:  [2]Vec2{p.A1, p.A2},
		reciprocal: recip,
		bands:      p.Bands,
		emin:       p.EMin,
		emax:       p.EMax,
	}, nil
}

// MustNew is New for package-level lattice constants; it panics on error.
func MustNew(p Params) *Config {
	c, err := New(p)
	if err != nil {
		panic(err)
	}
	return c
}

// reciprocal returns b_i = 2π·(column i of D⁻¹), where D has the primitive
// vectors as rows, so that b_i·a_j = 2π·δ_ij.
func reciprocal(a1, a2 Vec2) ([2]Vec2, error) {
	d := mat.NewDense(2, 2, []float64{a1[0], a1[1], a2[0], a2[1]})
	if mat.Det(d) == 0 {
		return [2]Vec2{}, fmt.Errorf("%w: a1=%v a2=%v", ErrSingularBasis, a1, a2)
	}

	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return [2]Vec2{}, fmt.Errorf("%w: %v", ErrSingularBasis, err)
	}

	var b [2]Vec2
	for i := range b {
		b[i] = Vec2{2 * math.Pi * inv.At(0, i), 2 * math.Pi * inv.At(1, i)}
	}
	return b, nil
}

func (c *Config) Name() string     { return c.name }
func (c *Config) Bravais() Bravais { return c.bravais }
func (c *Config) Bands() int       { return c.bands }
func (c *Config) EMin() float64    { return c.emin }
func (c *Config) EMax() float64    { return c.emax }

func (c *Config) Bandwidth() float64 { return c.emax - c.emin }

func (c *Config) Primitive() (Vec2, Vec2) { return c.primitive[0], c.primitive[1] }

func (c *Config) Reciprocal() (Vec2, Vec2) { return c.reciprocal[0], c.reciprocal[1] }

// Absolute maps fractional reciprocal coordinates to a wavevector.
func (c *Config) Absolute(f1, f2 float64) Vec2 {
	return c.reciprocal[0].Scale(f1).Add(c.reciprocal[1].Scale(f2))
}

// DualResidual is max |b_i·a_j - 2π·δ_ij| over the four pairs.
func (c *Config) DualResidual() float64 {
	worst := 0.0
	for i, b := range c.reciprocal {
		for j, a := range c.primitive {
			want := 0.0
			if i == j {
				want = 2 * math.Pi
			}
			worst = math.Max(worst, math.Abs(b.Dot(a)-want))
		}
	}
	return worst
}

func (c *Config) String() string {
	return fmt.Sprintf("%s (%s, %d band(s), E in [%.4g, %.4g])", c.name, c.bravais, c.bands, c.emin, c.emax)
}
