// Package hsl samples paths through reciprocal space along high-symmetry
// lines.
//
// A path is an ordered label string such as "GXMG". Every consecutive pair
// of points is one segment, sampled with n evenly spaced points; the final
// segment also carries its endpoint, so a path of L segments yields n·L+1
// samples and no junction point is emitted twice.
package hsl

import (
	"fmt"

	"github.com/san-kum/latfun/internal/lattice"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Path is a sampled high-symmetry line. Kx, Ky and K have equal length; K is
// the accumulated arc length, starting at 0.
type Path struct {
	Kx, Ky, K []float64

	// Labels is the resolved label sequence and Ticks the arc length at
	// which each label is reached.
	Labels string
	Ticks  []float64
}

func (p *Path) Len() int { return len(p.K) }

// Resolve maps labels to absolute wavevectors, [k1 k2]·frac.
func Resolve(b lattice.Bravais, k1, k2 lattice.Vec2, points string) ([]lattice.Vec2, error) {
	set, err := Points(b)
	if err != nil {
		return nil, err
	}

	basis := mat.NewDense(2, 2, []float64{
		k1[0], k2[0],
		k1[1], k2[1],
	})

	labels := []rune(points)
	nodes := make([]lattice.Vec2, len(labels))
	for i, l := range labels {
		frac, ok := set[l]
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s lattice (known: %s)", ErrUnknownPoint, l, b, set.Labels())
		}

		var abs mat.VecDense
		abs.MulVec(basis, mat.NewVecDense(2, []float64{frac[0], frac[1]}))
		nodes[i] = lattice.Vec2{abs.AtVec(0), abs.AtVec(1)}
	}
	return nodes, nil
}

// Sample builds the path through points with n samples per segment. An empty
// points string selects DefaultPath(b).
func Sample(b lattice.Bravais, k1, k2 lattice.Vec2, n int, points string) (*Path, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrPointCount, n)
	}
	if points == "" {
		def, err := DefaultPath(b)
		if err != nil {
			return nil, err
		}
		points = def
	}

	nodes, err := Resolve(b, k1, k2, points)
	if err != nil {
		return nil, err
	}
	if len(nodes) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrShortPath, points)
	}

	segments := len(nodes) - 1
	total := n*segments + 1
	path := &Path{
		Kx:     make([]float64, 0, total),
		Ky:     make([]float64, 0, total),
		K:      make([]float64, 0, total),
		Labels: points,
		Ticks:  make([]float64, 0, len(nodes)),
	}

	line := make([]float64, n+1)
	running := 0.0
	for i := 0; i < segments; i++ {
		start, end := nodes[i], nodes[i+1]
		length := floats.Distance(start[:], end[:], 2)

		count := n
		if i == segments-1 {
			count = n + 1
		}

		path.Kx = append(path.Kx, span(line, start[0], end[0])[:count]...)
		path.Ky = append(path.Ky, span(line, start[1], end[1])[:count]...)
		path.K = append(path.K, span(line, running, running+length)[:count]...)
		path.Ticks = append(path.Ticks, running)

		running += length
	}
	path.Ticks = append(path.Ticks, running)

	return path, nil
}

// span fills dst with evenly spaced values from l to u, both ends exact.
func span(dst []float64, l, u float64) []float64 {
	floats.Span(dst, l, u)
	dst[0], dst[len(dst)-1] = l, u
	return dst
}
