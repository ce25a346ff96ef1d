package pathlen

// DefaultReferencePanels is the number of panels used for reference lengths
// unless a caller asks for something else. With 16 nodes per panel, this is
// accurate to roundoff for any interval a few hundred units wide.
const DefaultReferencePanels = 256

// ReferenceLength returns the arc length of the path over iv, computed with
// composite 16-point Gauss–Legendre quadrature over the given number of
// panels. It converges far faster than the Newton–Cotes rules used by
// [Length] and serves as the ground truth for [Analyze].
//
// panels < 1 is treated as 1.
func ReferenceLength(iv Interval, panels int) float64 {
	return gaussLegendre(Speed, iv.A, iv.B, max(panels, 1))
}

func gaussLegendre(f func(float64) float64, a, b float64, panels int) float64 {
	w := (b - a) / float64(panels)
	var sum float64
	for i := range panels {
		lo := a + float64(i)*w
		sum += gaussLegendrePanel(f, lo, lo+w)
	}
	return sum
}

func gaussLegendrePanel(f func(float64) float64, a, b float64) float64 {
	mid := 0.5 * (a + b)
	half := 0.5 * (b - a)
	var sum float64
	for _, c := range gaussLegendreCoeffs16 {
		sum += c[0] * f(mid+half*c[1])
	}
	return sum * half
}

// Table of Legendre-Gauss quadrature coefficients (weight, abscissa), adapted
// from: <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs16 = [...][2]float64{
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, -0.2816035507792589},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, -0.4580167776572274},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, -0.6178762444026438},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, -0.7554044083550030},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, -0.8656312023878318},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, -0.9445750230732326},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, -0.9894009349916499},
	{0.0271524594117541, 0.9894009349916499},
}
