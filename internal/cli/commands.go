package cli

import (
	"fmt"
	"io"

	"honnef.co/go/pathlen"
	"honnef.co/go/pathlen/internal/report"
)

// Length prints the length of the path over iv computed with n segments.
func Length(env Env, iv pathlen.Interval, n int) error {
	if n < 0 {
		return fmt.Errorf("segment count must not be negative, got %d", n)
	}
	l := env.Metrics.Length(iv, n)
	env.logger().Debug("computed length", "interval", iv, "n", n, "length", l)
	fmt.Fprintf(env.Out, "%.10f\n", l)
	return nil
}

// Sample writes the path data for iv. If name is "-", the data is written to
// env.Out instead of a report.
func Sample(env Env, iv pathlen.Interval, points int, name string) error {
	write := func(w io.Writer) error {
		return report.WritePathData(w, iv, points)
	}
	if name == "-" {
		return write(env.Out)
	}
	err := report.Save(env.Open, name, write)
	env.Metrics.Report(name, err)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "-> File '%s' created for path visualization.\n", name)
	return nil
}

// Locate prints where on the path an agent moving at speed v is after time t.
func Locate(env Env, iv pathlen.Interval, v, t float64) error {
	pt, err := pathlen.PositionAt(iv, v, t, 1e-9)
	if err != nil {
		return err
	}
	total := pathlen.ReferenceLength(iv, pathlen.DefaultReferencePanels)
	covered := min(max(v*t, 0), total)
	env.logger().Debug("located agent", "interval", iv, "speed", v, "time", t, "point", pt)

	fmt.Fprintf(env.Out, "Position after %f seconds: x = %f, y = %f\n", t, pt.X, pt.Y)
	fmt.Fprintf(env.Out, "Distance covered: %f of %f units\n", covered, total)
	if v*t >= total {
		fmt.Fprintf(env.Out, "The end of the path is reached after %f seconds.\n", pathlen.TravelTime(total, v))
	}
	return nil
}
