package pathlen

import (
	"math"
	"testing"
)

func TestDefaultSegmentCounts(t *testing.T) {
	diff(t, []int{10, 51, 100, 501, 1000, 5000, 10001}, DefaultSegmentCounts())

	counts := DefaultSegmentCounts()
	counts[0] = 3
	if DefaultSegmentCounts()[0] != 10 {
		t.Error("modifying the returned slice changed the default")
	}
}

func TestConvergeDefault(t *testing.T) {
	iv := Interval{0, 10}
	table := Converge(iv, DefaultSegmentCounts())
	if len(table) != 7 {
		t.Fatalf("got %d rows, want 7", len(table))
	}

	var ns []int
	for _, row := range table {
		ns = append(ns, row.N)
		if row.Length < 0 {
			t.Errorf("negative length %v for n=%d", row.Length, row.N)
		}
		if row.Length != iv.Length(row.N) {
			t.Errorf("row for n=%d has length %v, want %v", row.N, row.Length, iv.Length(row.N))
		}
	}
	diff(t, DefaultSegmentCounts(), ns)

	// The last row must be the most accurate one. Near machine precision,
	// rows may tie up to roundoff.
	ref := ReferenceLength(iv, DefaultReferencePanels)
	final, _ := table.Final()
	lastErr := math.Abs(final.Length - ref)
	for _, row := range table[:len(table)-1] {
		if e := math.Abs(row.Length - ref); lastErr > e+1e-12 {
			t.Errorf("n=%d has error %g, smaller than final error %g", row.N, e, lastErr)
		}
	}
	approx(t, "final length", trueLength, final.Length, 1e-9)
}

func TestConvergeKeepsOrder(t *testing.T) {
	iv := Interval{-2, 3}
	counts := []int{100, 4, 100, 9}
	table := Converge(iv, counts)
	want := ConvergenceTable{
		{100, iv.Length(100)},
		{4, iv.Length(4)},
		{100, iv.Length(100)},
		{9, iv.Length(9)},
	}
	diff(t, want, table)
}

func TestConvergeEmpty(t *testing.T) {
	table := Converge(Interval{0, 1}, nil)
	if len(table) != 0 {
		t.Errorf("got %d rows, want 0", len(table))
	}
	if _, ok := table.Final(); ok {
		t.Error("Final reported a row for an empty table")
	}
	if d := table.Deltas(); d != nil {
		t.Errorf("got deltas %v, want nil", d)
	}
}

func TestDeltas(t *testing.T) {
	table := ConvergenceTable{{1, 3}, {2, 1.5}, {4, 2}, {8, 2}}
	diff(t, []float64{1.5, 0.5, 0}, table.Deltas())
}
