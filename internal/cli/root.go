package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rr-simulator/config"
	"rr-simulator/internal/logging"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
)

// NewRootCmd creates the root cobra command for rrsim.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rrsim",
		Short:        "Round robin CPU scheduling simulator",
		Long:         "rrsim simulates preemptive round robin scheduling and reports the timeline and per-process metrics.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error); overrides config")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (console, json); overrides config")

	root.AddCommand(
		newServeCmd(),
		newSimulateCmd(),
		newStepCmd(),
	)
	return root
}

// setup loads config and builds the logger shared by all subcommands.
func setup(cmd *cobra.Command) (*config.SchedulerConfig, zerolog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return cfg, logger, nil
}
