package pathlen

// Integrate integrates f over [a, b] using n equal segments.
//
// Even segment counts use [SimpsonOneThird] throughout. Odd counts of at least
// 3 apply [SimpsonOneThird] to the first n − 3 segments and
// [SimpsonThreeEighths] to the trailing 3 segments. A single segment uses the
// trapezoidal rule. For n ≤ 0 the result is 0.
//
// Negative n is not an error but is almost certainly a bug in the caller.
func Integrate(f func(float64) float64, a, b float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	h := (b - a) / float64(n)

	switch {
	case n%2 == 0:
		return SimpsonOneThird(f, a, n, h)
	case n >= 3:
		// The 3/8 rule always takes the trailing block, which keeps the
		// results identical to earlier releases.
		l := SimpsonThreeEighths(f, a+float64(n-3)*h, h)
		if n > 3 {
			l += SimpsonOneThird(f, a, n-3, h)
		}
		return l
	default:
		return (h / 2) * (f(a) + f(b))
	}
}

// Length returns the arc length of the path over [a, b], computed with n
// segments. The result is non-negative for b > a and n ≥ 0, and 0 for n = 0.
func Length(a, b float64, n int) float64 {
	return Integrate(Speed, a, b, n)
}
