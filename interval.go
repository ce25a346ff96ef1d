package pathlen

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInterval is returned for intervals whose upper bound isn't
	// strictly greater than their lower bound.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrInvalidSpeed is returned for speeds that aren't finite and positive.
	ErrInvalidSpeed = errors.New("invalid speed")
)

// Interval is the range [A, B] of x values covered by the path. Valid
// intervals have B > A.
type Interval struct {
	A float64
	B float64
}

// NewInterval returns the interval [a, b], or an error wrapping
// [ErrInvalidInterval] if b ≤ a or either bound is NaN.
func NewInterval(a, b float64) (Interval, error) {
	iv := Interval{A: a, B: b}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (iv Interval) Validate() error {
	// Written so that NaN bounds fail as well.
	if !(iv.B > iv.A) {
		return fmt.Errorf("%w [%g, %g]: b must be greater than a", ErrInvalidInterval, iv.A, iv.B)
	}
	return nil
}

// Width returns B − A.
func (iv Interval) Width() float64 {
	return iv.B - iv.A
}

// Step returns the width of one of n equal segments of the interval.
func (iv Interval) Step(n int) float64 {
	return iv.Width() / float64(n)
}

// Length returns the arc length of the path over the interval, computed with n
// segments. See [Length].
func (iv Interval) Length(n int) float64 {
	return Length(iv.A, iv.B, n)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.A, iv.B)
}

// ValidateSpeed returns an error wrapping [ErrInvalidSpeed] unless v is finite
// and positive.
func ValidateSpeed(v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w %g: must be finite and greater than 0", ErrInvalidSpeed, v)
	}
	return nil
}

// TravelTime returns the time an agent moving at constant speed v needs to
// cover length. It is the plain quotient length / v; callers validate v with
// [ValidateSpeed].
func TravelTime(length, v float64) float64 {
	return length / v
}
