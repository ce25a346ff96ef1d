package pathlen

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(t *testing.T, name string, want, got, epsilon float64) {
	t.Helper()
	if math.Abs(want-got) > epsilon {
		t.Errorf("%s = %.15g, want %.15g (±%g)", name, got, want, epsilon)
	}
}
