// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names within FS.
const (
	SalaryDatasetFile = "salary_dataset.schema.json"
	EstimateFile      = "estimate.schema.json"
)

// SalaryDataset is the schema a reference dataset must satisfy before it is decoded.
//
//go:embed salary_dataset.schema.json
var SalaryDataset []byte

// Estimate describes the JSON shape of a produced estimate.
//
//go:embed estimate.schema.json
var Estimate []byte
