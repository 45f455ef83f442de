package main

import (
	"fmt"

	"github.com/jonathan/salary-predictor/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort        int
	serveDatasetFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the estimate, batch, summary and options endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to server.port from config)")
	serveCmd.Flags().StringVarP(&serveDatasetFile, "dataset", "d", "", "Path to salary dataset JSON or YAML file (defaults to dataset_path from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ds, err := loadDataset(serveDatasetFile)
	if err != nil {
		return err
	}

	cfg := server.ConfigFrom(appConfig)
	if servePort > 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(cfg, ds, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("starting server",
		zap.Int("port", cfg.Port),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)
	return srv.Start()
}
