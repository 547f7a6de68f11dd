package models

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/lattice"
)

// Dice primitive vectors in units of the hub-rim bond length.
var (
	diceA1 = lattice.Vec2{sqrt3, 0}
	diceA2 = lattice.Vec2{sqrt3 / 2, 1.5}
)

const diceBands = 3

var diceConfig = lattice.MustNew(lattice.Params{
	Name:    "dice",
	Bravais: lattice.HexagonalPrimitive,
	A1:      diceA1,
	A2:      diceA2,
	Bands:   diceBands,
	EMin:    dos.DiceMin,
	EMax:    dos.DiceMax,
})

// Dice is the three-site dice lattice: one six-fold hub and two three-fold
// rim sites per cell. Sites are ordered [hub, rim1, rim2].
type Dice struct {
	base
	ham field.Evaluator[complex128]
}

func NewDice() *Dice {
	return &Dice{
		base: base{
			cfg:    diceConfig,
			solver: dos.Dice(),
			disp: field.Vectorize(func(kx, ky float64) *field.Array[float64] {
				e := DiceBands(kx, ky)
				return field.Vector(e[:]...)
			}),
		},
		ham: field.Vectorize(func(kx, ky float64) *field.Array[complex128] {
			h := DiceHamiltonian(kx, ky)
			m, _ := field.FromSlice(h[:], diceBands, diceBands)
			return m
		}),
	}
}

// diceHop is the hub→rim1 matrix element.
func diceHop(kx, ky float64) complex128 {
	d1 := diceA1.DotK(kx, ky)
	d2 := diceA2.DotK(kx, ky)
	d3 := d2 - d1

	phase := func(x float64) complex128 { return cmplx.Exp(complex(0, x/3)) }
	return -(phase(d1+d2) + phase(d3-d1) + phase(-d2-d3))
}

// DiceHamiltonian returns the row-major 3x3 Bloch Hamiltonian.
func DiceHamiltonian(kx, ky float64) [diceBands * diceBands]complex128 {
	h := diceHop(kx, ky)
	hc := cmplx.Conj(h)
	return [diceBands * diceBands]complex128{
		0, h, hc,
		hc, 0, 0,
		h, 0, 0,
	}
}

// DiceBands returns (-√2|f|, 0, √2|f|) with
// |f|² = 3 + 2cos(a1·k) + 2cos(a2·k) + 2cos((a2-a1)·k).
func DiceBands(kx, ky float64) [diceBands]float64 {
	d1 := diceA1.DotK(kx, ky)
	d2 := diceA2.DotK(kx, ky)
	f2 := 3 + 2*math.Cos(d1) + 2*math.Cos(d2) + 2*math.Cos(d2-d1)

	e := math.Sqrt2 * math.Sqrt(math.Max(f2, 0))
	return [diceBands]float64{-e, 0, e}
}

// Hamiltonian has shape (3, 3) + shape(kx).
func (d *Dice) Hamiltonian(kx, ky *field.Array[float64]) (*field.Array[complex128], error) {
	return d.ham(kx, ky)
}
