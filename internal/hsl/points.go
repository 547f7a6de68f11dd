package hsl

import (
	"fmt"
	"sort"

	"github.com/san-kum/latfun/internal/lattice"
)

// PointSet maps a high-symmetry point label to fractional coordinates in
// units of the reciprocal primitive vectors.
type PointSet map[rune]lattice.Vec2

var (
	tetragonalPoints = PointSet{
		'G': {0, 0},
		'X': {0.5, 0},
		'M': {0.5, 0.5},
	}

	hexagonalPoints = PointSet{
		'G': {0, 0},
		'M': {0.5, 0},
		'K': {2.0 / 3, 1.0 / 3},
	}
)

// Points returns a copy of the point set for b.
func Points(b lattice.Bravais) (PointSet, error) {
	var src PointSet
	switch b {
	case lattice.TetragonalPrimitive:
		src = tetragonalPoints
	case lattice.HexagonalPrimitive:
		src = hexagonalPoints
	default:
		return nil, fmt.Errorf("%w: %v", lattice.ErrUnknownBravais, b)
	}

	out := make(PointSet, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out, nil
}

// DefaultPath is GXMG for tetragonal and GMKG for hexagonal lattices.
func DefaultPath(b lattice.Bravais) (string, error) {
	switch b {
	case lattice.TetragonalPrimitive:
		return "GXMG", nil
	case lattice.HexagonalPrimitive:
		return "GMKG", nil
	default:
		return "", fmt.Errorf("%w: %v", lattice.ErrUnknownBravais, b)
	}
}

// Labels returns the known labels in sorted order.
func (p PointSet) Labels() string {
	rs := make([]rune, 0, len(p))
	for r := range p {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}
