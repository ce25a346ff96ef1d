package pathlen

import (
	"math"
	"slices"
	"testing"
)

func TestPosition(t *testing.T) {
	approx(t, "Position(0)", 0, Position(0), 0)
	approx(t, "Position(π/2)", 2+math.Pi/4, Position(math.Pi/2), 1e-15)
	approx(t, "Position(-π)", -math.Pi/2, Position(-math.Pi), 1e-15)
}

func TestSpeed(t *testing.T) {
	// f'(0) = 2.5
	approx(t, "Speed(0)", math.Sqrt(1+2.5*2.5), Speed(0), 1e-15)
	// f'(π) = -1.5
	approx(t, "Speed(π)", math.Sqrt(1+1.5*1.5), Speed(math.Pi), 1e-15)

	// Speed is the length of the tangent (1, f'(x)), checked against a
	// central difference of Position.
	const h = 1e-6
	for _, x := range []float64{-4, 0.3, 2, 7.5} {
		d := (Position(x+h) - Position(x-h)) / (2 * h)
		approx(t, "Speed", math.Hypot(1, d), Speed(x), 1e-8)
		if Speed(x) < 1 {
			t.Errorf("Speed(%v) = %v < 1", x, Speed(x))
		}
	}
}

func TestSamples(t *testing.T) {
	iv := Interval{0, 10}
	pts := slices.Collect(Samples(iv, 200))
	if len(pts) != 200 {
		t.Fatalf("got %d points, want 200", len(pts))
	}
	diff(t, Pt(0, 0), pts[0])
	approx(t, "last x", 10, pts[199].X, 1e-12)
	step := 10.0 / 199
	for i, pt := range pts {
		approx(t, "x", float64(i)*step, pt.X, 1e-12)
		if pt.Y != Position(pt.X) {
			t.Errorf("point %d is %v, not on the path", i, pt)
		}
	}

	diff(t, []Point{Pt(-1, Position(-1)), Pt(1, Position(1))}, slices.Collect(Samples(Interval{-1, 1}, 2)))
}

func TestSamplesTooFew(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if pts := slices.Collect(Samples(Interval{0, 1}, n)); len(pts) != 0 {
			t.Errorf("Samples(%d) yielded %v", n, pts)
		}
	}
}

func TestSamplesStop(t *testing.T) {
	var n int
	for range Samples(Interval{0, 1}, 100) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times", n)
	}
}
