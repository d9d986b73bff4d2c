package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/config"
)

func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSCHEME\tALPHA\tBETA\tDELTA\tGAMMA\tP0\tD0\tT_MAX\tH\tSTEPS")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				steps := "-"
				if c.Steps > 0 {
					steps = fmt.Sprint(c.Steps)
				}
				fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%s\n",
					name, c.Scheme, c.Params.Alpha, c.Params.Beta, c.Params.Delta, c.Params.Gamma,
					c.Initial.P0, c.Initial.D0, c.TMax, c.H, steps)
			}
			return tw.Flush()
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}

	var (
		preset string
		force  bool
	)
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "lvsim.yaml"
			if len(args) > 0 {
				path = args[0]
			}

			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			if err := config.Save(path, cfg); err != nil {
				return err
			}
			a.logger.Info("config written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
