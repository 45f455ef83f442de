package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/salary-predictor/internal/dataset"
	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadDataset loads the dataset named by the -d flag, or the configured one when
// the flag is empty.
func loadDataset(flagPath string) (*types.Dataset, error) {
	path := appConfig.WithDatasetPath(flagPath).DatasetPath

	start := time.Now()
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	logger.Debug("dataset loaded",
		zap.String("path", path),
		zap.Int("major_groups", len(ds.MajorGroups)),
		zap.Int("skills", len(ds.Skills)),
		zap.Duration("duration", time.Since(start)),
	)
	return ds, nil
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return append(data, '\n'), nil
}

// writeOutput writes data to outPath, or to the command's stdout when outPath is empty.
func writeOutput(cmd *cobra.Command, outPath string, data []byte) error {
	if outPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outPath)
	return nil
}
