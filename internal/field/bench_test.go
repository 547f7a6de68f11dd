package field

import (
	"math"
	"testing"
)

func benchInputs(n int) (*Array[float64], *Array[float64]) {
	xs := make([]float64, n*n)
	ys := make([]float64, n*n)
	for i := range xs {
		xs[i] = float64(i%n) / float64(n) * 2 * math.Pi
		ys[i] = float64(i/n) / float64(n) * 2 * math.Pi
	}
	kx, _ := FromSlice(xs, n, n)
	ky, _ := FromSlice(ys, n, n)
	return kx, ky
}

func BenchmarkLift(b *testing.B) {
	disp := Lift(func(kx, ky float64) float64 { return -2*math.Cos(kx) - 2*math.Cos(ky) })
	kx, ky := benchInputs(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = disp(kx, ky)
	}
}

func BenchmarkVectorize3Band(b *testing.B) {
	bands := Vectorize(func(kx, ky float64) *Array[float64] {
		e := math.Sqrt(3 + 2*math.Cos(kx) + 2*math.Cos(ky) + 2*math.Cos(kx-ky))
		return Vector(-e, 0, e)
	})
	kx, ky := benchInputs(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bands(kx, ky)
	}
}
