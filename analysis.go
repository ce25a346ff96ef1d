package pathlen

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrEmptyTable is returned by [Analyze] for tables without rows.
var ErrEmptyTable = errors.New("empty convergence table")

// ConvergenceSummary describes how the lengths of a [ConvergenceTable]
// approach a reference length.
type ConvergenceSummary struct {
	// Final is the length computed with the last segment count.
	Final float64
	// Reference is the length the table was compared against.
	Reference float64
	// Errors holds the absolute error of each row against Reference.
	Errors []float64
	// Deltas holds the absolute differences between successive rows.
	Deltas []float64
	// Monotonic reports whether Deltas strictly decrease.
	Monotonic bool
	// Orders holds the observed order of convergence between successive rows,
	// log(e₁/e₂) / log(n₂/n₁). Pairs involving a zero error are skipped.
	Orders []float64
	// MeanOrder and MedianOrder summarize Orders. They are NaN if Orders is
	// empty.
	MeanOrder   float64
	MedianOrder float64
}

// Analyze summarizes the convergence of table towards reference, which is
// usually obtained from [ReferenceLength].
//
// The observed orders are only meaningful while the errors are dominated by
// truncation error. Once the lengths agree with the reference to within
// roundoff, the orders become noise.
func Analyze(table ConvergenceTable, reference float64) (ConvergenceSummary, error) {
	final, ok := table.Final()
	if !ok {
		return ConvergenceSummary{}, ErrEmptyTable
	}

	s := ConvergenceSummary{
		Final:       final.Length,
		Reference:   reference,
		Errors:      make([]float64, len(table)),
		Deltas:      table.Deltas(),
		Monotonic:   true,
		MeanOrder:   math.NaN(),
		MedianOrder: math.NaN(),
	}
	for i, row := range table {
		s.Errors[i] = math.Abs(row.Length - reference)
	}
	for i := 1; i < len(s.Deltas); i++ {
		if s.Deltas[i] >= s.Deltas[i-1] {
			s.Monotonic = false
			break
		}
	}

	for i := 0; i+1 < len(table); i++ {
		e1, e2 := s.Errors[i], s.Errors[i+1]
		n1, n2 := table[i].N, table[i+1].N
		if e1 == 0 || e2 == 0 || n1 <= 0 || n2 <= 0 || n1 == n2 {
			continue
		}
		s.Orders = append(s.Orders, math.Log(e1/e2)/math.Log(float64(n2)/float64(n1)))
	}
	if len(s.Orders) > 0 {
		// Neither can fail on non-empty input.
		s.MeanOrder, _ = stats.Mean(s.Orders)
		s.MedianOrder, _ = stats.Median(s.Orders)
	}
	return s, nil
}
