package main

import (
	"github.com/spf13/cobra"

	"honnef.co/go/pathlen/internal/cli"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write points of the path for plotting",
	Long: `Writes evenly spaced points (x, f(x)) of the path as CSV with the header x,y.
Use --file - to write to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		iv, err := interval(cfg)
		if err != nil {
			return err
		}
		env, err := newEnv(cmd, cfg)
		if err != nil {
			return err
		}
		name := cfg.PathFile
		if cmd.Flags().Changed("file") {
			name, _ = cmd.Flags().GetString("file")
		}
		return cli.Sample(env, iv, cfg.PlotPoints, name)
	},
}

func init() {
	addInputFlags(sampleCmd, false)
	fs := sampleCmd.Flags()
	fs.Int("points", 200, "Number of points")
	fs.StringP("out-dir", "o", ".", "Directory the file is written to")
	fs.StringP("file", "f", "path_data.csv", "Name of the file, or - for stdout")
	rootCmd.AddCommand(sampleCmd)
}
