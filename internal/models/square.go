package models

import (
	"math"

	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/lattice"
)

var squareConfig = lattice.MustNew(lattice.Params{
	Name:    "square",
	Bravais: lattice.TetragonalPrimitive,
	A1:      lattice.Vec2{1, 0},
	A2:      lattice.Vec2{0, 1},
	Bands:   1,
	EMin:    dos.SquareMin,
	EMax:    dos.SquareMax,
})

// Square is the square lattice with unit lattice constant and unit
// nearest-neighbour hopping.
type Square struct {
	base
}

func NewSquare() *Square {
	return &Square{base{
		cfg:    squareConfig,
		solver: dos.Square(),
		disp:   field.Lift(SquareEnergy),
	}}
}

// SquareEnergy is -2cos kx - 2cos ky, minimal (-4) at Γ.
func SquareEnergy(kx, ky float64) float64 {
	return -2*math.Cos(kx) - 2*math.Cos(ky)
}

func (s *Square) GDOS(e *field.Array[float64]) (*field.Array[float64], error) {
	return s.solver.GDOS(e)
}
