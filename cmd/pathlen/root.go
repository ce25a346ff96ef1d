package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathlen",
	Short: "pathlen measures the length of the path f(x) = 2*sin(x) + 0.5*x",
	Long: `pathlen computes the arc length of the path f(x) = 2*sin(x) + 0.5*x between
two points using Simpson's rule, shows how the result converges as the number
of segments grows, and estimates how long an NPC moving at constant speed needs
to travel the path.

Without a subcommand, pathlen runs the full analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML file with the analysis settings")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}
