package dos

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mathext"
)

func TestKComplementMatchesCompleteK(t *testing.T) {
	for _, m := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999} {
		got := KComplement(1 - m)
		want := mathext.CompleteK(m)
		if math.Abs(got-want) > 1e-12*want {
			t.Errorf("KComplement(1-%v) = %v, CompleteK = %v", m, got, want)
		}
	}
}

func TestKComplementLimits(t *testing.T) {
	if got := KComplement(1); math.Abs(got-math.Pi/2) > 1e-15 {
		t.Errorf("K(0) = %v, want π/2", got)
	}
	if got := KComplement(0); !math.IsInf(got, 1) {
		t.Errorf("K(1) = %v, want +Inf", got)
	}
	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		if got := KComplement(p); !math.IsNaN(got) {
			t.Errorf("KComplement(%v) = %v, want NaN", p, got)
		}
	}

	// K(1-p) ~ ln(4/√p) as p → 0. The log is taken on a rescaled p so that
	// subnormal inputs keep full precision.
	for _, p := range []float64{1e-20, 1e-100, math.SmallestNonzeroFloat64} {
		got := KComplement(p)
		want := math.Log(4) - 0.5*(math.Log(p*0x1p100)-100*math.Ln2)
		if math.Abs(got-want) > 1e-9*want {
			t.Errorf("KComplement(%g) = %v, want %v", p, got, want)
		}
	}
}

func TestKComplementSubnormal(t *testing.T) {
	const want = 373.6063303218106
	if got := KComplement(math.SmallestNonzeroFloat64); math.Abs(got-want) > 1e-9 {
		t.Errorf("KComplement(min subnormal) = %v, want %v", got, want)
	}
	if got := singularK; math.Abs(got-want) > 1e-9 {
		t.Errorf("singularK = %v, want %v", got, want)
	}
}

func TestCompleteE(t *testing.T) {
	if got := CompleteE(0); math.Abs(got-math.Pi/2) > 1e-15 {
		t.Errorf("E(0) = %v, want π/2", got)
	}
	if got := CompleteE(1); got != 1 {
		t.Errorf("E(1) = %v, want 1", got)
	}
}
