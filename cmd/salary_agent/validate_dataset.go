package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/salary-predictor/internal/schemas"
	"github.com/spf13/cobra"
)

var validateDatasetCmd = &cobra.Command{
	Use:   "validate-dataset",
	Short: "Validate a salary dataset file",
	Long:  "Checks a dataset against the salary dataset schema and the keys the estimator falls back to.",
	RunE:  runValidateDataset,
}

var validateDatasetFile string

func init() {
	validateDatasetCmd.Flags().StringVarP(&validateDatasetFile, "dataset", "d", "", "Path to salary dataset JSON or YAML file (defaults to dataset_path from config)")
	rootCmd.AddCommand(validateDatasetCmd)
}

func runValidateDataset(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	ds, err := loadDataset(validateDatasetFile)
	if err != nil {
		_, _ = fmt.Fprintln(out, "Validation failed:")

		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
			}
		}
		return err
	}

	_, _ = fmt.Fprintf(out, "Validation passed: %d major groups, %d regions, %d school tiers, %d skills\n",
		len(ds.MajorGroups), len(ds.Regions), len(ds.SchoolTierMultipliers), len(ds.Skills))
	return nil
}
