// Package pathlen measures the arc length of an agent's path and estimates how
// long the agent takes to travel it.
//
// The path is the graph of the fixed function
//
//	f(x) = 2·sin(x) + 0.5·x
//
// over an [Interval] [a, b]. Its length is the integral of the arc length
// integrand, [Speed], which is sqrt(1 + f'(x)²).
//
// # Quadrature
//
// Lengths are computed by composite Newton–Cotes quadrature over n equal
// segments. [Integrate] picks a rule based on the parity of n:
//
//   - even n uses the composite Simpson 1/3 rule ([SimpsonOneThird]) over all
//     segments.
//   - odd n ≥ 3 uses the composite 1/3 rule over the first n − 3 segments and
//     the Simpson 3/8 rule ([SimpsonThreeEighths]) over the trailing 3
//     segments.
//   - n = 1 falls back to the trapezoidal rule ([Trapezoid]), as neither
//     Simpson rule is defined for a single segment.
//   - n ≤ 0 produces a length of 0.
//
// This gives a valid composite rule for every segment count. The trailing
// 3/8 block is slightly less accurate than the rest of the composite rule, but
// both are fourth order.
//
// # Convergence
//
// [Converge] computes the length for each of a list of segment counts, in the
// order given, producing a [ConvergenceTable]. [DefaultSegmentCounts] mixes
// even and odd counts as well as small and large ones. [Analyze] compares a
// table against a [ReferenceLength] computed by composite Gauss–Legendre
// quadrature and estimates the observed order of convergence.
//
// # Travel
//
// [TravelTime] divides a length by the agent's speed. [SolveForArclen] and
// [PositionAt] go the other way and find where on the path the agent is after
// covering some distance or after some amount of time.
//
// # Plotting
//
// [Samples] produces evenly spaced points on the path itself, for drawing it.
// It does not depend on the quadrature.
//
// # Literature
//
//   - [Simpson's rule]
//   - [Gaussian quadrature]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [Simpson's rule]: https://en.wikipedia.org/wiki/Simpson%27s_rule
// [Gaussian quadrature]: https://en.wikipedia.org/wiki/Gaussian_quadrature
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package pathlen
