package main

import (
	"github.com/spf13/cobra"

	"honnef.co/go/pathlen/internal/cli"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print where the NPC is after some time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		iv, err := interval(cfg)
		if err != nil {
			return err
		}
		if cfg.Speed == nil {
			return errMissingSpeed
		}
		env, err := newEnv(cmd, cfg)
		if err != nil {
			return err
		}
		t, _ := cmd.Flags().GetFloat64("time")
		return cli.Locate(env, iv, *cfg.Speed, t)
	},
}

func init() {
	addInputFlags(locateCmd, true)
	locateCmd.Flags().Float64P("time", "t", 0, "Time since the NPC started, in seconds")
	rootCmd.AddCommand(locateCmd)
}
