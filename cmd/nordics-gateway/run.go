package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SwineFeather/nordics-gateway/pkg/config"
	"github.com/SwineFeather/nordics-gateway/pkg/server"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	watch         bool
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the gateway",
	Long: `Start the gateway with the specified configuration.

The gateway listens on the configured address and serves the community API
behind the security pipeline.

Examples:
  # Start with the default config file
  nordics-gateway run

  # Start with a custom config
  nordics-gateway run --config /etc/nordics/gateway.yaml

  # Override the listen address
  nordics-gateway run --listen 0.0.0.0:8080

  # Reload header policy and rate limits when the config file changes
  nordics-gateway run --watch

  # Validate config without starting
  nordics-gateway run --dry-run`,
	RunE: runGateway,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.watch, "watch", false, "reload runtime-safe settings when the config file changes")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting the gateway")
}

func runGateway(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithEnvOverrides(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		RedactPII: cfg.Telemetry.Logging.RedactPII,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if runFlags.watch {
		watcher, err := config.NewWatcher(cfgFile, logger)
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		go func() {
			if err := watcher.Watch(ctx, srv.ApplyConfig); err != nil {
				logger.Error("config watcher stopped", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	return srv.Start(ctx)
}
