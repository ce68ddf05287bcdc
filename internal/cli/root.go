package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root command of the scheduler simulator.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "os-scheduler",
		Short: "Simulate non-preemptive CPU scheduling policies",
		Long:  "os-scheduler runs FCFS, SJF, Priority, Deadline and MLQ over a process list and reports timing metrics and a Gantt timeline.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagConfig == "" {
				cfg = config.GetSchedulerConfig()
			} else {
				var err error
				if cfg, err = config.Load(flagConfig); err != nil {
					return err
				}
			}
			level, format := cfg.LogLevel, cfg.LogFormat
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			if flagDebug {
				level = "debug"
			}
			logger = logging.NewLoggerWithWriter(level, format, cmd.ErrOrStderr())
			slog.SetDefault(logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSimulateCmd(),
		newServeCmd(),
		newRandomCmd(),
	)

	return root
}
