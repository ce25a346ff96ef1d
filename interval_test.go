package pathlen

import (
	"errors"
	"math"
	"testing"
)

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(-1, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Interval{-1, 2.5}, iv)
	if w := iv.Width(); w != 3.5 {
		t.Errorf("Width = %v, want 3.5", w)
	}
	if h := iv.Step(7); h != 0.5 {
		t.Errorf("Step(7) = %v, want 0.5", h)
	}

	for _, bad := range [][2]float64{
		{5, 5},
		{10, 0},
		{math.NaN(), 1},
		{0, math.NaN()},
	} {
		if _, err := NewInterval(bad[0], bad[1]); !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("NewInterval(%v, %v) returned error %v, want %v", bad[0], bad[1], err, ErrInvalidInterval)
		}
	}
}

func TestValidateSpeed(t *testing.T) {
	for _, v := range []float64{1e-9, 1, 42} {
		if err := ValidateSpeed(v); err != nil {
			t.Errorf("ValidateSpeed(%v) = %v", v, err)
		}
	}
	for _, v := range []float64{0, -1, math.Inf(1), math.Inf(-1), math.NaN()} {
		if err := ValidateSpeed(v); !errors.Is(err, ErrInvalidSpeed) {
			t.Errorf("ValidateSpeed(%v) = %v, want %v", v, err, ErrInvalidSpeed)
		}
	}
}

func TestTravelTime(t *testing.T) {
	l := Length(0, 10, 10001)
	if got, want := TravelTime(l, 2.5), l/2.5; got != want {
		t.Errorf("TravelTime = %v, want %v", got, want)
	}
}
