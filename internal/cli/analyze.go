// Package cli implements the commands of the pathlen tool, independently of
// flag parsing.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"honnef.co/go/pathlen"
	"honnef.co/go/pathlen/internal/config"
	"honnef.co/go/pathlen/internal/logging"
	"honnef.co/go/pathlen/internal/metrics"
	"honnef.co/go/pathlen/internal/report"
)

// Env is what commands need from the outside world.
type Env struct {
	Out     io.Writer
	Open    report.Opener
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

func (env Env) logger() *slog.Logger {
	if env.Logger == nil {
		return logging.NewNop()
	}
	return env.Logger
}

// Inputs validates the interval and speed of cfg, which must not be missing.
func Inputs(cfg config.Config) (pathlen.Interval, float64, error) {
	if missing := cfg.Missing(); len(missing) > 0 {
		return pathlen.Interval{}, 0, fmt.Errorf("missing inputs: %v", missing)
	}
	iv, err := pathlen.NewInterval(*cfg.A, *cfg.B)
	if err != nil {
		return pathlen.Interval{}, 0, err
	}
	if err := pathlen.ValidateSpeed(*cfg.Speed); err != nil {
		return pathlen.Interval{}, 0, err
	}
	return iv, *cfg.Speed, nil
}

// Analyze runs the convergence analysis, prints the table and the travel time
// estimate, and writes the convergence and path reports.
//
// Invalid inputs are returned as errors before anything is computed. Failing
// to write a report is printed and logged, but doesn't stop the other reports
// and isn't returned.
func Analyze(env Env, cfg config.Config) error {
	log := env.logger()
	if err := cfg.Validate(); err != nil {
		return err
	}
	iv, v, err := Inputs(cfg)
	if err != nil {
		return err
	}
	log.Debug("starting analysis", "interval", iv, "speed", v, "segment_counts", cfg.SegmentCounts)

	table := env.Metrics.Converge(iv, cfg.SegmentCounts)
	fmt.Fprintln(env.Out, "\n--- Path Length Convergence Analysis ---")
	fmt.Fprintln(env.Out, report.RenderConvergence(table))
	env.save(cfg.ConvergenceFile, "for convergence analysis", func(w io.Writer) error {
		return report.WriteConvergence(w, table)
	})

	ref := pathlen.ReferenceLength(iv, pathlen.DefaultReferencePanels)
	summary, err := pathlen.Analyze(table, ref)
	if err != nil {
		return err
	}
	log.Debug("convergence", "reference", ref, "monotonic", summary.Monotonic,
		"mean_order", summary.MeanOrder, "median_order", summary.MedianOrder)
	fmt.Fprintf(env.Out, "Reference length (Gauss-Legendre): %.10f\n", ref)
	if !math.IsNaN(summary.MedianOrder) {
		fmt.Fprintf(env.Out, "Observed order of convergence (median): %.2f\n", summary.MedianOrder)
	}
	if !summary.Monotonic {
		fmt.Fprintln(env.Out, "Warning: successive differences don't decrease monotonically.")
	}

	final := env.Metrics.Length(iv, cfg.Final())
	env.Metrics.SetFinal(final, ref)
	fmt.Fprintln(env.Out, "\n--- Final Result ---")
	fmt.Fprintf(env.Out, "Accurate path length (L): %f units\n", final)
	fmt.Fprintf(env.Out, "Estimated travel time (T = L/v): %f seconds\n\n", pathlen.TravelTime(final, v))

	env.save(cfg.PathFile, "for path visualization", func(w io.Writer) error {
		return report.WritePathData(w, iv, cfg.PlotPoints)
	})

	if cfg.MetricsFile != "" {
		if err := env.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error("couldn't write metrics", "file", cfg.MetricsFile, "error", err)
		}
	}
	return nil
}

// save writes one report. Errors are reported but not returned, so that one
// unwritable report doesn't prevent the others.
func (env Env) save(name, purpose string, write func(io.Writer) error) {
	err := report.Save(env.Open, name, write)
	env.Metrics.Report(name, err)
	if err != nil {
		fmt.Fprintf(env.Out, "Error: %v\n", err)
		env.logger().Error("report failed", "file", name, "error", err)
		return
	}
	fmt.Fprintf(env.Out, "-> File '%s' created %s.\n", name, purpose)
}
