package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/viz"
)

func (a *app) exploreCmd() *cobra.Command {
	var s scenario
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive euler vs rk4 comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.scenarioSetup(cmd, &s)
			if err != nil {
				return err
			}
			if err := experiment.New(cfg, experiment.WithLogger(a.logger)).Validate(); err != nil {
				return err
			}

			steps := cfg.Steps
			if steps == 0 {
				steps = lotka.SampleCount(cfg.TMax, cfg.H) - 1
			}
			return viz.RunExplorer(viz.NewExplorer(cfg.Params, cfg.Initial.P0, cfg.Initial.D0, cfg.H, steps, cfg.Limits))
		},
	}
	addScenarioFlags(cmd, &s)
	return cmd
}
