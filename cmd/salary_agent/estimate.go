package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jonathan/salary-predictor/internal/estimator"
	"github.com/jonathan/salary-predictor/internal/observability"
	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatJSON    = "json"
	formatText    = "text"
	formatSummary = "summary"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate salary ranges for one profile",
	Long: `Reads a profile JSON file and prints its starting, 5-year and 10-year salary
ranges with confidence, drivers and tips.

Output formats: json (default), text (boxed report) and summary (plain-text copy).`,
	RunE: runEstimate,
}

var (
	estimateProfileFile string
	estimateDatasetFile string
	estimateOutputFile  string
	estimateFormat      string
)

func init() {
	estimateCmd.Flags().StringVarP(&estimateProfileFile, "profile", "p", "", "Path to profile JSON file (required)")
	estimateCmd.Flags().StringVarP(&estimateDatasetFile, "dataset", "d", "", "Path to salary dataset JSON or YAML file (defaults to dataset_path from config)")
	estimateCmd.Flags().StringVarP(&estimateOutputFile, "out", "o", "", "Path to output file (defaults to stdout)")
	estimateCmd.Flags().StringVar(&estimateFormat, "format", formatJSON, "Output format: json, text or summary")

	if err := estimateCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	switch estimateFormat {
	case formatJSON, formatText, formatSummary:
	default:
		return fmt.Errorf("unsupported format %q", estimateFormat)
	}

	profile, err := readProfile(estimateProfileFile)
	if err != nil {
		return err
	}

	ds, err := loadDataset(estimateDatasetFile)
	if err != nil {
		return err
	}

	est, err := estimator.New().Estimate(profile, ds)
	if err != nil {
		return fmt.Errorf("failed to estimate: %w", err)
	}

	logger.Info("estimate computed",
		zap.String("profile", estimateProfileFile),
		zap.String("major_group", est.InputsUsed.MajorGroup),
		zap.Float64("starting_mid", est.Starting.Mid),
		zap.Int("confidence", est.Confidence.Score),
	)

	var out []byte
	switch estimateFormat {
	case formatText:
		var buf bytes.Buffer
		observability.NewPrinter(&buf).PrintEstimate(est)
		out = buf.Bytes()
	case formatSummary:
		out = []byte(observability.SummaryText(est) + "\n")
	default:
		if out, err = marshalJSON(est); err != nil {
			return err
		}
	}

	return writeOutput(cmd, estimateOutputFile, out)
}

func readProfile(path string) (*types.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	defer func() { _ = f.Close() }()

	profile, err := types.DecodeProfile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return profile, nil
}
