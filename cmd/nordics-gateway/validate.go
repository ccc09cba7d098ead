package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SwineFeather/nordics-gateway/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load and validate a configuration file without starting the gateway.

Reports every validation error at once rather than stopping at the first.

Examples:
  # Validate the default config file
  nordics-gateway validate

  # Validate a specific file
  nordics-gateway validate --config /etc/nordics/gateway.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithEnvOverrides(cfgFile)
	if err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) {
			for _, fieldErr := range verr.Errors {
				fmt.Printf("✗ %s\n", fieldErr.Error())
			}
			return fmt.Errorf("%d validation errors", len(verr.Errors))
		}
		return err
	}

	fmt.Println("✓ Configuration valid")
	fmt.Printf("  listen address:  %s\n", cfg.Server.ListenAddress)
	fmt.Printf("  rate limit:      %d requests / %s\n", cfg.Security.RateLimit.MaxRequests, cfg.Security.RateLimit.Window)
	fmt.Printf("  storage backend: %s\n", cfg.Storage.Backend)
	return nil
}
