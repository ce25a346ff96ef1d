package pathlen

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

func TestReferenceLength(t *testing.T) {
	for _, iv := range []Interval{{0, 10}, {-3, 1}, {2, 2.01}, {-50, 50}} {
		// An independent reference: a single high-order Gauss–Legendre rule.
		want := quad.Fixed(Speed, iv.A, iv.B, 1000, quad.Legendre{}, 0)
		approx(t, "ReferenceLength "+iv.String(), want, ReferenceLength(iv, DefaultReferencePanels), 1e-9)
	}
	approx(t, "ReferenceLength [0, 10]", trueLength, ReferenceLength(Interval{0, 10}, DefaultReferencePanels), 1e-9)
}

func TestReferenceLengthPanels(t *testing.T) {
	iv := Interval{0, 10}
	// Non-positive panel counts are treated as a single panel.
	one := ReferenceLength(iv, 1)
	for _, p := range []int{0, -5} {
		if got := ReferenceLength(iv, p); got != one {
			t.Errorf("ReferenceLength(%d) = %v, want %v", p, got, one)
		}
	}
	if d := math.Abs(ReferenceLength(iv, 8) - trueLength); d > 1e-10 {
		t.Errorf("8 panels are off by %g", d)
	}
}

func TestGaussLegendrePolynomial(t *testing.T) {
	// 16 nodes integrate polynomials up to degree 31 exactly.
	p := func(x float64) float64 { return math.Pow(x, 9) - 3*x*x }
	// ∫₋₁² x⁹ − 3x² dx = (2¹⁰ − 1)/10 − (8 + 1)
	approx(t, "gaussLegendre", 1023.0/10-9, gaussLegendre(p, -1, 2, 1), 1e-12)
	approx(t, "gaussLegendre", 1023.0/10-9, gaussLegendre(p, -1, 2, 3), 1e-12)
}
