package main

import (
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/pathlen/internal/cli"
	"honnef.co/go/pathlen/internal/config"
	"honnef.co/go/pathlen/internal/prompt"
	"honnef.co/go/pathlen/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the convergence analysis and estimate the travel time",
	Long: `Computes the path length for a list of segment counts, prints the
convergence table and the estimated travel time, and writes
convergence_analysis.csv and path_data.csv.

Inputs that aren't given as flags or in the config file are prompted for.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	env, err := newEnv(cmd, cfg)
	if err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("no-banner"); !quiet {
		ui.PrintBanner(env.Out)
	}
	if err := prompt.Ask(cmd.Context(), os.Stdin, env.Out, requests(&cfg)...); err != nil {
		return err
	}
	return cli.Analyze(env, cfg)
}

// requests returns prompts for the inputs missing from cfg.
func requests(cfg *config.Config) []prompt.Request {
	var reqs []prompt.Request
	for _, name := range cfg.Missing() {
		switch name {
		case "a":
			cfg.A = new(float64)
			reqs = append(reqs, prompt.Request{Label: "Enter the start of the path (a): ", Value: cfg.A})
		case "b":
			cfg.B = new(float64)
			reqs = append(reqs, prompt.Request{Label: "Enter the end of the path (b): ", Value: cfg.B})
		case "speed":
			cfg.Speed = new(float64)
			reqs = append(reqs, prompt.Request{Label: "Enter the NPC's speed (units/second, v): ", Value: cfg.Speed})
		}
	}
	return reqs
}

func addAnalyzeFlags(cmd *cobra.Command) {
	addInputFlags(cmd, true)
	fs := cmd.Flags()
	fs.IntSlice("segments", nil, "Segment counts for the convergence table (default 10,51,100,501,1000,5000,10001)")
	fs.Int("final-segments", 0, "Segment count for the final length (default: largest of --segments)")
	fs.Int("points", 200, "Number of points in path_data.csv")
	fs.StringP("out-dir", "o", ".", "Directory the reports are written to")
	fs.String("metrics-file", "", "Write Prometheus metrics of the run to this file")
	fs.Bool("no-banner", false, "Don't print the banner")
}

func init() {
	addAnalyzeFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)

	// Running pathlen without a subcommand runs the analysis.
	addAnalyzeFlags(rootCmd)
	rootCmd.RunE = runAnalyze
}
