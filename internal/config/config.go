// Package config loads the settings of a path length analysis from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"honnef.co/go/pathlen"
)

var (
	ErrInvalidSegments = errors.New("segment counts must be positive")
	ErrInvalidPoints   = errors.New("plot needs at least 2 points")
)

// Default file names of the reports.
const (
	ConvergenceFile = "convergence_analysis.csv"
	PathFile        = "path_data.csv"
)

// Config holds the inputs of an analysis. The interval bounds and the speed
// are pointers because they are prompted for when they are missing.
type Config struct {
	A     *float64 `yaml:"a"`
	B     *float64 `yaml:"b"`
	Speed *float64 `yaml:"speed"`

	// SegmentCounts are the segment counts of the convergence table, in order.
	SegmentCounts []int `yaml:"segment_counts"`
	// FinalSegments is the segment count of the length used for the travel
	// time. 0 means the largest of SegmentCounts.
	FinalSegments int `yaml:"final_segments"`
	// PlotPoints is the number of points written to the path data.
	PlotPoints int `yaml:"plot_points"`

	OutDir          string `yaml:"out_dir"`
	ConvergenceFile string `yaml:"convergence_file"`
	PathFile        string `yaml:"path_file"`
	// MetricsFile, if set, receives the metrics of the run in the Prometheus
	// text format.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SegmentCounts:   pathlen.DefaultSegmentCounts(),
		PlotPoints:      200,
		OutDir:          ".",
		ConvergenceFile: ConvergenceFile,
		PathFile:        PathFile,
	}
}

// Load reads the YAML file at path and applies it on top of [Default].
// Unknown keys are rejected. Scalars are converted leniently, so that
// a: "0.5" works as well as a: 0.5.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse is like [Load] but takes the file contents.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	if len(raw) == 0 {
		return cfg, nil
	}
	if _, ok := raw["segment_counts"]; ok {
		// Replace the defaults rather than merging element-wise.
		cfg.SegmentCounts = nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that don't depend on user input. The interval
// and speed are validated by the pathlen package once they are known.
func (c Config) Validate() error {
	if len(c.SegmentCounts) == 0 {
		return fmt.Errorf("%w: list is empty", ErrInvalidSegments)
	}
	for _, n := range c.SegmentCounts {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSegments, n)
		}
	}
	if c.FinalSegments < 0 {
		return fmt.Errorf("%w: final segment count is %d", ErrInvalidSegments, c.FinalSegments)
	}
	if c.PlotPoints < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidPoints, c.PlotPoints)
	}
	return nil
}

// Final returns the segment count for the final length.
func (c Config) Final() int {
	if c.FinalSegments > 0 {
		return c.FinalSegments
	}
	n := 0
	for _, m := range c.SegmentCounts {
		n = max(n, m)
	}
	return n
}

// Missing returns the names of the inputs that haven't been set yet.
func (c Config) Missing() []string {
	var out []string
	if c.A == nil {
		out = append(out, "a")
	}
	if c.B == nil {
		out = append(out, "b")
	}
	if c.Speed == nil {
		out = append(out, "speed")
	}
	return out
}
