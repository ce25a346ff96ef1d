package pathlen

import (
	"iter"
	"math"
)

// Position evaluates the path f(x) = 2·sin(x) + 0.5·x.
func Position(x float64) float64 {
	return 2*math.Sin(x) + 0.5*x
}

// Derivative evaluates f'(x) = 2·cos(x) + 0.5.
func Derivative(x float64) float64 {
	return 2*math.Cos(x) + 0.5
}

// Speed evaluates the arc length integrand sqrt(1 + f'(x)²). It is the rate
// at which arc length grows with x and is never less than 1.
func Speed(x float64) float64 {
	d := Derivative(x)
	return math.Sqrt(1 + d*d)
}

// Samples returns an iterator over num evenly spaced points of the path, from
// iv.A to iv.B inclusive. It yields nothing if num < 2.
func Samples(iv Interval, num int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if num < 2 {
			return
		}
		step := iv.Width() / float64(num-1)
		for i := range num {
			x := iv.A + float64(i)*step
			if !yield(Pt(x, Position(x))) {
				return
			}
		}
	}
}
