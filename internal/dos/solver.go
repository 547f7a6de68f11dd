// Package dos evaluates closed-form densities of states of the
// nearest-neighbour tight-binding lattices.
//
// Densities are per unit cell and summed over bands. Every formula is built
// on complete elliptic integrals and diverges at the van Hove energies of its
// lattice. A Solver applies one policy to all of them:
//
//   - energies outside [Min, Max] give exactly 0;
//   - with singularity set, the raw formula is returned, +Inf included;
//   - otherwise +Inf and negative values are replaced by Proxy, the density
//     at the smallest representable offset from the singular point.
package dos

import (
	"fmt"
	"math"

	"github.com/san-kum/latfun/internal/field"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Formula is a density valid on the band, [Min, Max].
type Formula func(e float64) float64

type Solver struct {
	Name     string
	Min, Max float64

	// Density is the DOS, Proxy its finite stand-in for divergent values.
	Density Formula
	Proxy   float64

	// General is the generalized DOS, nil when the lattice has none.
	General Formula
}

// InBand reports Min <= e <= Max. NaN is never in band.
func (s *Solver) InBand(e float64) bool {
	return e >= s.Min && e <= s.Max
}

// At is the density at a single energy.
func (s *Solver) At(e float64, singularity bool) float64 {
	if !s.InBand(e) {
		return 0
	}

	rho := s.Density(e)
	if singularity {
		return rho
	}
	if math.IsInf(rho, 1) || rho < 0 {
		return s.Proxy
	}
	return rho
}

// DOS evaluates At elementwise. The input is not modified.
func (s *Solver) DOS(e *field.Array[float64], singularity bool) (*field.Array[float64], error) {
	if e == nil {
		return nil, field.ErrNilArray
	}
	return field.Map(e, func(v float64) float64 { return s.At(v, singularity) }), nil
}

func (s *Solver) HasGDOS() bool { return s.General != nil }

// GeneralAt is the generalized density at a single energy.
func (s *Solver) GeneralAt(e float64) (float64, error) {
	if s.General == nil {
		return 0, fmt.Errorf("%w: %s", ErrNoGDOS, s.Name)
	}
	if !s.InBand(e) {
		return 0, nil
	}
	return s.General(e), nil
}

// GDOS evaluates GeneralAt elementwise.
func (s *Solver) GDOS(e *field.Array[float64]) (*field.Array[float64], error) {
	if s.General == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoGDOS, s.Name)
	}
	if e == nil {
		return nil, field.ErrNilArray
	}
	return field.Map(e, func(v float64) float64 {
		if !s.InBand(v) {
			return 0
		}
		return s.General(v)
	}), nil
}

// Curve samples the finite density on steps+1 evenly spaced energies across
// the band.
func (s *Solver) Curve(steps int) (energies, rho []float64, err error) {
	if steps < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrSteps, steps)
	}
	energies = floats.Span(make([]float64, steps+1), s.Min, s.Max)
	energies[steps] = s.Max
	rho = make([]float64, len(energies))
	for i, e := range energies {
		rho[i] = s.At(e, false)
	}
	return energies, rho, nil
}

// Normalization integrates the finite density over the band with the
// trapezoidal rule. It approximates the number of dispersive states per cell.
func Normalization(s *Solver, steps int) (float64, error) {
	x, y, err := s.Curve(steps)
	if err != nil {
		return 0, err
	}
	return integrate.Trapezoidal(x, y), nil
}
