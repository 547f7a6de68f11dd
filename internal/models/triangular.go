package models

import (
	"math"

	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/lattice"
)

const sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558069794

var triangularConfig = lattice.MustNew(lattice.Params{
	Name:    "triangular",
	Bravais: lattice.HexagonalPrimitive,
	A1:      lattice.Vec2{1, 0},
	A2:      lattice.Vec2{0.5, sqrt3 / 2},
	Bands:   1,
	EMin:    dos.TriangularMin,
	EMax:    dos.TriangularMax,
})

type Triangular struct {
	base
}

func NewTriangular() *Triangular {
	return &Triangular{base{
		cfg:    triangularConfig,
		solver: dos.Triangular(),
		disp:   field.Lift(TriangularEnergy),
	}}
}

// TriangularEnergy is -2cos kx - 2cos((kx+√3ky)/2) - 2cos((kx-√3ky)/2):
// -6 at Γ, 2 at M, 3 at K.
func TriangularEnergy(kx, ky float64) float64 {
	return -2*math.Cos(kx) - 2*math.Cos(0.5*(kx+sqrt3*ky)) - 2*math.Cos(0.5*(kx-sqrt3*ky))
}
