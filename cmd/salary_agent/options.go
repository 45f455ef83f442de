package main

import (
	"bytes"
	"fmt"

	"github.com/jonathan/salary-predictor/internal/dataset"
	"github.com/jonathan/salary-predictor/internal/observability"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the selectable categories of a dataset",
	RunE:  runOptions,
}

var (
	optionsDatasetFile string
	optionsFormat      string
)

func init() {
	optionsCmd.Flags().StringVarP(&optionsDatasetFile, "dataset", "d", "", "Path to salary dataset JSON or YAML file (defaults to dataset_path from config)")
	optionsCmd.Flags().StringVar(&optionsFormat, "format", formatText, "Output format: text or json")
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	if optionsFormat != formatText && optionsFormat != formatJSON {
		return fmt.Errorf("unsupported format %q", optionsFormat)
	}

	ds, err := loadDataset(optionsDatasetFile)
	if err != nil {
		return err
	}
	opts := dataset.Options(ds)

	if optionsFormat == formatJSON {
		out, err := marshalJSON(opts)
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", out)
	}

	var buf bytes.Buffer
	observability.NewPrinter(&buf).PrintOptions(opts)
	return writeOutput(cmd, "", buf.Bytes())
}
