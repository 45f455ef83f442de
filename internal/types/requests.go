// Package types provides type definitions for structured data used throughout the salary-predictor system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// MaxBatchProfiles caps the number of profiles in a single batch request.
const MaxBatchProfiles = 500

// BatchEstimateRequest is the body of a batch estimate call.
type BatchEstimateRequest struct {
	Profiles []Profile `json:"profiles" validate:"required,min=1,max=500"`
}

// BatchEstimateResponse carries estimates in request order.
type BatchEstimateResponse struct {
	Results []*Estimate `json:"results"`
}

// Validate validates the BatchEstimateRequest using the validator.
func (r *BatchEstimateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
