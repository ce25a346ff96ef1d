package pathlen

// SimpsonOneThird integrates f over n segments of width h starting at a, using
// the composite Simpson 1/3 rule. The nodes a + i·h for i = 0, …, n are
// weighted 1, 4, 2, 4, …, 2, 4, 1 and the sum is scaled by h/3.
//
// n must be even. For n = 0 the result is 0.
//
// The rule is exact for polynomials of degree three or lower.
func SimpsonOneThird(f func(float64) float64, a float64, n int, h float64) float64 {
	if n <= 0 {
		return 0
	}
	sum := f(a) + f(a+float64(n)*h)
	for i := 1; i < n; i += 2 {
		sum += 4 * f(a+float64(i)*h)
	}
	for i := 2; i < n; i += 2 {
		sum += 2 * f(a+float64(i)*h)
	}
	return (h / 3) * sum
}

// SimpsonThreeEighths integrates f over exactly 3 segments of width h starting
// at a, using Simpson's 3/8 rule with weights 1, 3, 3, 1 scaled by 3h/8.
func SimpsonThreeEighths(f func(float64) float64, a float64, h float64) float64 {
	return (3 * h / 8) * (f(a) + 3*f(a+h) + 3*f(a+2*h) + f(a+3*h))
}

// Trapezoid integrates f over the single segment [a, b] using the trapezoidal
// rule.
func Trapezoid(f func(float64) float64, a, b float64) float64 {
	return ((b - a) / 2) * (f(a) + f(b))
}
