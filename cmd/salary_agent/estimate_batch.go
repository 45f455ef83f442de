package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/salary-predictor/internal/estimator"
	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var estimateBatchCmd = &cobra.Command{
	Use:   "estimate-batch",
	Short: "Estimate salary ranges for a list of profiles",
	Long:  "Reads a JSON array of profiles, estimates them concurrently and writes {\"results\": [...]} in input order.",
	RunE:  runEstimateBatch,
}

var (
	batchProfilesFile string
	batchDatasetFile  string
	batchOutputFile   string
	batchConcurrency  int
)

func init() {
	estimateBatchCmd.Flags().StringVarP(&batchProfilesFile, "profiles", "p", "", "Path to JSON array of profiles (required)")
	estimateBatchCmd.Flags().StringVarP(&batchDatasetFile, "dataset", "d", "", "Path to salary dataset JSON or YAML file (defaults to dataset_path from config)")
	estimateBatchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output file (defaults to stdout)")
	estimateBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum concurrent estimates (defaults to estimation.batch_concurrency from config)")

	if err := estimateBatchCmd.MarkFlagRequired("profiles"); err != nil {
		panic(fmt.Sprintf("failed to mark profiles flag as required: %v", err))
	}

	rootCmd.AddCommand(estimateBatchCmd)
}

func runEstimateBatch(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(batchProfilesFile)
	if err != nil {
		return fmt.Errorf("failed to read profiles: %w", err)
	}
	profiles, err := types.DecodeProfiles(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse profiles %s: %w", batchProfilesFile, err)
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles in %s", batchProfilesFile)
	}

	ds, err := loadDataset(batchDatasetFile)
	if err != nil {
		return err
	}

	limit := batchConcurrency
	if limit <= 0 {
		limit = appConfig.Estimation.BatchConcurrency
	}

	start := time.Now()
	results, err := estimator.New().EstimateBatch(cmd.Context(), profiles, ds, limit)
	if err != nil {
		return fmt.Errorf("failed to estimate batch: %w", err)
	}

	logger.Info("batch estimated",
		zap.Int("profiles", len(results)),
		zap.Int("concurrency", limit),
		zap.Duration("duration", time.Since(start)),
	)

	out, err := marshalJSON(types.BatchEstimateResponse{Results: results})
	if err != nil {
		return err
	}
	return writeOutput(cmd, batchOutputFile, out)
}
