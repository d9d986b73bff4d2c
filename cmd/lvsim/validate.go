package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/experiment"
)

func (a *app) validateCmd() *cobra.Command {
	var s scenario
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "check a parameter set without integrating",
		Long: `Check model parameters against the biological and safety rules.

Parameters come from the usual flags, or from a JSON or YAML bundle given
with --file using the keys alpha, beta, delta, gamma, P0, D0, t_max (or tmax)
and optionally h (or dt) and n_steps. With n_steps the run length checked
is h*n_steps, the same length run and compare would integrate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.scenarioSetup(cmd, &s)
			if err != nil {
				return reject(cmd, err)
			}

			if err := experiment.New(cfg, experiment.WithLogger(a.logger)).Validate(); err != nil {
				return reject(cmd, err)
			}

			a.logger.Debug("input accepted", "input", cfg.Input())
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	addScenarioFlags(cmd, &s)
	return cmd
}

// reject prints the reason for input errors. Other errors pass through.
func reject(cmd *cobra.Command, err error) error {
	var inErr *experiment.InputError
	if errors.As(err, &inErr) {
		fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", inErr.Reason)
	}
	return err
}
