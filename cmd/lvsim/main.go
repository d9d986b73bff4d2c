package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/config"
	"github.com/san-kum/lvsim/internal/logging"
)

type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// main runs the lvsim CLI and exits with status 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:           "lvsim",
		Short:         "predator-prey integration lab: euler vs rk4",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger(cmd, a.logLevel, a.logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", config.DefaultLogFormat, "log format (text, json)")

	rootCmd.AddCommand(
		a.runCmd(),
		a.compareCmd(),
		a.convergeCmd(),
		a.phaseCmd(),
		a.orbitsCmd(),
		a.validateCmd(),
		a.exportCmd(),
		a.presetsCmd(),
		a.configCmd(),
		a.exploreCmd(),
	)
	return rootCmd
}

func (a *app) initLogger(cmd *cobra.Command, level, format string) error {
	logger, err := logging.New(level, format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// applyLogConfig switches to the config file's log settings unless the
// corresponding flag was given.
func (a *app) applyLogConfig(cmd *cobra.Command, cfg *config.Config) error {
	level, format := a.logLevel, a.logFormat
	if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
		level = cfg.Log.Level
	}
	if !cmd.Flags().Changed("log-format") && cfg.Log.Format != "" {
		format = cfg.Log.Format
	}
	return a.initLogger(cmd, level, format)
}
