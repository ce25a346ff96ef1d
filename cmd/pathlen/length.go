package main

import (
	"github.com/spf13/cobra"

	"honnef.co/go/pathlen/internal/cli"
)

var lengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Print the path length for a single segment count",
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
		n, _ := cmd.Flags().GetInt("count")
		return cli.Length(env, iv, n)
	},
}

func init() {
	addInputFlags(lengthCmd, false)
	lengthCmd.Flags().IntP("count", "n", 10001, "Number of segments")
	rootCmd.AddCommand(lengthCmd)
}
