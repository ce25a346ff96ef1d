package main

import (
	"errors"

	"github.com/spf13/cobra"

	"honnef.co/go/pathlen"
	"honnef.co/go/pathlen/internal/cli"
	"honnef.co/go/pathlen/internal/config"
	"honnef.co/go/pathlen/internal/logging"
	"honnef.co/go/pathlen/internal/metrics"
	"honnef.co/go/pathlen/internal/report"
)

var (
	errMissingBounds = errors.New("both --a and --b are required")
	errMissingSpeed  = errors.New("--speed is required")
)

func addInputFlags(cmd *cobra.Command, speed bool) {
	fs := cmd.Flags()
	fs.Float64("a", 0, "Start of the path")
	fs.Float64("b", 0, "End of the path")
	if speed {
		fs.Float64P("speed", "v", 0, "Speed of the NPC in units per second")
	}
}

// loadConfig reads the config file, if any, and applies the flags that were
// set on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	setFloat := func(name string, dst **float64) {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			return
		}
		v, _ := fs.GetFloat64(name)
		*dst = &v
	}
	setFloat("a", &cfg.A)
	setFloat("b", &cfg.B)
	setFloat("speed", &cfg.Speed)

	if fs.Lookup("segments") != nil && fs.Changed("segments") {
		cfg.SegmentCounts, _ = fs.GetIntSlice("segments")
	}
	if fs.Lookup("final-segments") != nil && fs.Changed("final-segments") {
		cfg.FinalSegments, _ = fs.GetInt("final-segments")
	}
	if fs.Lookup("points") != nil && fs.Changed("points") {
		cfg.PlotPoints, _ = fs.GetInt("points")
	}
	if fs.Lookup("out-dir") != nil && fs.Changed("out-dir") {
		cfg.OutDir, _ = fs.GetString("out-dir")
	}
	if fs.Lookup("metrics-file") != nil && fs.Changed("metrics-file") {
		cfg.MetricsFile, _ = fs.GetString("metrics-file")
	}
	return cfg, nil
}

func newEnv(cmd *cobra.Command, cfg config.Config) (cli.Env, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return cli.Env{}, err
	}
	return cli.Env{
		Out:     cmd.OutOrStdout(),
		Open:    report.DirOpener(cfg.OutDir),
		Logger:  logging.New(level),
		Metrics: metrics.New(),
	}, nil
}

// interval returns the interval given by the config, which must have both
// bounds.
func interval(cfg config.Config) (pathlen.Interval, error) {
	if cfg.A == nil || cfg.B == nil {
		return pathlen.Interval{}, errMissingBounds
	}
	return pathlen.NewInterval(*cfg.A, *cfg.B)
}
