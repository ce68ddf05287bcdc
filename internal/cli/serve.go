package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/api"
	"os-scheduler/config"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP under /api/v1",
		RunE: func(cmd *cobra.Command, args []string) error {
			serveCfg := serveConfig(cfg, port, cmd.Flags().Changed("port"))
			app := api.NewApp(serveCfg, logger)
			addr := fmt.Sprintf(":%d", serveCfg.Port)
			logger.Info("scheduler api listening", "addr", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	return cmd
}

// serveConfig copies base so a --port override never leaks into the shared
// config returned by config.GetSchedulerConfig.
func serveConfig(base *config.SchedulerConfig, port int, override bool) *config.SchedulerConfig {
	c := *base
	if override {
		c.Port = port
	}
	return &c
}
