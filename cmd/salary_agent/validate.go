package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/salary-predictor/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long:  "Validates a JSON document, e.g. the output of estimate, against a schema such as schemas/estimate.schema.json.",
	RunE:  runValidate,
}

var (
	validateSchemaFile string
	validateJSONFile   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVar(&validateJSONFile, "json", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	schemaPath := validateSchemaFile
	if resolved := schemas.ResolveSchemaPath(schemaPath); resolved != "" {
		schemaPath = resolved
	}

	err := schemas.ValidateJSON(schemaPath, validateJSONFile)
	if err == nil {
		_, _ = fmt.Fprintf(out, "Validation passed: %s\n", validateJSONFile)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintln(out, "Validation failed:")
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%s does not match %s", validateJSONFile, validateSchemaFile)
	}
	return err
}
