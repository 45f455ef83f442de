// Package main implements the salary_agent CLI for graduate salary estimates.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/salary-predictor/internal/config"
	"github.com/jonathan/salary-predictor/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "salary_agent",
	Short: "Graduate salary estimates from a reference compensation dataset",
	Long: `salary_agent projects starting, 5-year and 10-year salary ranges for a graduate
profile against a salary dataset, and serves the same estimates over HTTP.

Configuration is read from --config (YAML or JSON) and SALARY_* environment
variables. A .env file in the working directory is loaded first.`,
	PersistentPreRunE: loadRuntime,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var (
	configPath string
	logLevel   string

	appConfig *config.Config
	logger    = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
}

// loadRuntime resolves the configuration and logger shared by every subcommand.
func loadRuntime(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	resolved := cfg.WithLogLevel(logLevel)
	if err := resolved.Validate(); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	l, err := logging.New(resolved.Logging.Level, resolved.Logging.Format)
	if err != nil {
		return err
	}

	appConfig = &resolved
	logger = l
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
