// Package dataset loads and checks the reference salary dataset.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/salary-predictor/internal/estimator"
	"github.com/jonathan/salary-predictor/internal/schemas"
	"github.com/jonathan/salary-predictor/internal/types"
	embedded "github.com/jonathan/salary-predictor/schemas"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a dataset.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a dataset file, validates it against the dataset schema and checks
// the keys the estimator relies on.
func Load(path string) (*types.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	ds, err := Parse(content, FormatFromPath(path))
	if err != nil {
		if loadErr, ok := err.(*LoadError); ok {
			loadErr.Path = path
		}
		return nil, err
	}
	return ds, nil
}

// Parse decodes and validates dataset content in the given format.
func Parse(content []byte, format Format) (*types.Dataset, error) {
	doc := content
	if format == FormatYAML {
		converted, err := yamlToJSON(content)
		if err != nil {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
		doc = converted
	}

	var probe any
	if err := json.Unmarshal(doc, &probe); err != nil {
		return nil, &LoadError{Message: "failed to parse JSON", Cause: err}
	}

	if err := schemas.ValidateBytes(embedded.SalaryDataset, doc); err != nil {
		return nil, &LoadError{Message: "dataset does not match schema", Cause: err}
	}

	var ds types.Dataset
	if err := json.Unmarshal(doc, &ds); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
	}

	if err := estimator.ValidateDataset(&ds); err != nil {
		return nil, &LoadError{Message: "dataset is not usable", Cause: err}
	}

	return &ds, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one schema.
func yamlToJSON(content []byte) ([]byte, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(stringKeys(raw))
}

// stringKeys converts non-string mapping keys (an unquoted `0:` in YAML) to strings.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = stringKeys(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = stringKeys(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = stringKeys(item)
		}
		return out
	default:
		return v
	}
}
