package pathlen

import (
	"math"
	"slices"
)

var defaultSegmentCounts = [...]int{10, 51, 100, 501, 1000, 5000, 10001}

// DefaultSegmentCounts returns the segment counts used for convergence
// analysis when the user doesn't specify any. The list mixes even and odd
// counts, so that both branches of [Integrate] are exercised.
//
// Each call returns a new slice.
func DefaultSegmentCounts() []int {
	return slices.Clone(defaultSegmentCounts[:])
}

// ConvergenceRow is the length computed for one segment count.
type ConvergenceRow struct {
	N      int
	Length float64
}

// ConvergenceTable lists lengths in the order their segment counts were given
// to [Converge].
type ConvergenceTable []ConvergenceRow

// Converge computes the length of the path over iv for each segment count in
// counts. Rows are in the same order as counts; they are neither sorted nor
// deduplicated.
func Converge(iv Interval, counts []int) ConvergenceTable {
	table := make(ConvergenceTable, 0, len(counts))
	for _, n := range counts {
		table = append(table, ConvergenceRow{N: n, Length: iv.Length(n)})
	}
	return table
}

// Final returns the last row of the table. ok is false if the table is empty.
func (t ConvergenceTable) Final() (row ConvergenceRow, ok bool) {
	if len(t) == 0 {
		return ConvergenceRow{}, false
	}
	return t[len(t)-1], true
}

// Deltas returns the absolute differences between the lengths of successive
// rows. The result has one element less than the table.
func (t ConvergenceTable) Deltas() []float64 {
	if len(t) < 2 {
		return nil
	}
	out := make([]float64, len(t)-1)
	for i := range out {
		out[i] = math.Abs(t[i+1].Length - t[i].Length)
	}
	return out
}
