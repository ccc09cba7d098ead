package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "nordics-gateway",
	Short: "Nordics Gateway - security middleware for the community API",
	Long: `Nordics Gateway fronts the community website API with a security
pipeline:

  - Declarative schema validation and sanitization of JSON payloads
  - Per-client fixed-window rate limiting with persistence across restarts
  - A hardened security header set (CSP, HSTS, Permissions-Policy) on
    every response
  - Structured logging with PII redaction and Prometheus metrics`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "gateway.yaml", "config file path")
}
