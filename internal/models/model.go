// Package models binds lattice constants, dispersions, density-of-states
// solvers and high-symmetry paths into one value per lattice type.
//
// The set of lattices is closed: square, triangular and dice. Optional
// capabilities are exposed through interfaces, so callers type-assert for
// them:
//
//	m, _ := models.Get("dice")
//	if hm, ok := m.(models.HamiltonianModel); ok {
//		h, err := hm.Hamiltonian(kx, ky) // shape (3, 3) + shape(kx)
//	}
package models

import (
	"errors"
	"fmt"

	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/hsl"
	"github.com/san-kum/latfun/internal/lattice"
)

var (
	ErrUnknownModel = errors.New("models: unknown lattice")
	ErrGridSize     = errors.New("models: grid dimensions must be positive")
)

type Model interface {
	Name() string
	Config() *lattice.Config
	Solver() *dos.Solver

	// Dispersion has shape S for single-band lattices and (bands)+S otherwise.
	Dispersion(kx, ky *field.Array[float64]) (*field.Array[float64], error)
	DOS(e *field.Array[float64], singularity bool) (*field.Array[float64], error)
	HSL(n int, points string) (*hsl.Path, error)
	DispersionGrid(n1, n2 int) (*Grid, error)
}

type HamiltonianModel interface {
	Model
	Hamiltonian(kx, ky *field.Array[float64]) (*field.Array[complex128], error)
}

type GDOSModel interface {
	Model
	GDOS(e *field.Array[float64]) (*field.Array[float64], error)
}

// Grid is a dispersion sampled on the reciprocal unit cell. Kx and Ky have
// shape (n2, n1); Energy has the dispersion's band dimensions in front.
type Grid struct {
	Kx, Ky *field.Array[float64]
	Energy *field.Array[float64]
}

type base struct {
	cfg    *lattice.Config
	solver *dos.Solver
	disp   field.Evaluator[float64]
}

func (b *base) Name() string            { return b.cfg.Name() }
func (b *base) Config() *lattice.Config { return b.cfg }
func (b *base) Solver() *dos.Solver     { return b.solver }

func (b *base) Dispersion(kx, ky *field.Array[float64]) (*field.Array[float64], error) {
	return b.disp(kx, ky)
}

func (b *base) DOS(e *field.Array[float64], singularity bool) (*field.Array[float64], error) {
	return b.solver.DOS(e, singularity)
}

// HSL samples n points per segment along points; "" selects the lattice's
// default path.
func (b *base) HSL(n int, points string) (*hsl.Path, error) {
	k1, k2 := b.cfg.Reciprocal()
	return hsl.Sample(b.cfg.Bravais(), k1, k2, n, points)
}

// DispersionGrid samples fractional coordinates -½ + i/n along each
// reciprocal vector, covering [-½, ½) once.
func (b *base) DispersionGrid(n1, n2 int) (*Grid, error) {
	if n1 < 1 || n2 < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridSize, n1, n2)
	}

	f1 := halfOpen(n1)
	f2 := halfOpen(n2)
	F1, F2 := field.Meshgrid(f1, f2)

	kx, err := field.New[float64](n2, n1)
	if err != nil {
		return nil, err
	}
	ky := kx.Clone()
	for i := 0; i < n2; i++ {
		for j := 0; j < n1; j++ {
			k := b.cfg.Absolute(F1.At(i, j), F2.At(i, j))
			kx.Set(k[0], i, j)
			ky.Set(k[1], i, j)
		}
	}

	energy, err := b.disp(kx, ky)
	if err != nil {
		return nil, err
	}
	return &Grid{Kx: kx, Ky: ky, Energy: energy}, nil
}

func halfOpen(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = -0.5 + float64(i)/float64(n)
	}
	return f
}

// Bands evaluates the dispersion along a sampled path and returns one slice
// per band.
func Bands(m Model, p *hsl.Path) ([][]float64, error) {
	kx := field.Vector(p.Kx...)
	ky := field.Vector(p.Ky...)

	e, err := m.Dispersion(kx, ky)
	if err != nil {
		return nil, err
	}

	data := e.Data()
	n := len(p.Kx)
	nb := 1
	if n > 0 {
		nb = len(data) / n
	}
	bands := make([][]float64, nb)
	for b := range bands {
		bands[b] = data[b*n : (b+1)*n]
	}
	return bands, nil
}
