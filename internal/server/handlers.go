package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/salary-predictor/internal/metrics"
	"github.com/jonathan/salary-predictor/internal/observability"
	"github.com/jonathan/salary-predictor/internal/types"
	"go.uber.org/zap"
)

const (
	maxProfileBytes = 64 << 10
	maxBatchBytes   = 16 << 20
)

// handleEstimate returns the estimate for a single profile
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	est, ok := s.estimateFromBody(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, est)
}

// handleEstimateSummary returns the plain-text summary of a single estimate
func (s *Server) handleEstimateSummary(w http.ResponseWriter, r *http.Request) {
	est, ok := s.estimateFromBody(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, observability.SummaryText(est)+"\n"); err != nil {
		s.logger.Error("failed to write summary", zap.Error(err))
	}
}

// estimateFromBody decodes the profile body and runs the estimator. On failure
// the error response has already been written.
func (s *Server) estimateFromBody(w http.ResponseWriter, r *http.Request) (*types.Estimate, bool) {
	profile, err := types.DecodeProfile(http.MaxBytesReader(w, r.Body, maxProfileBytes))
	if err != nil {
		s.failRequest(w, r, decodeError(err))
		return nil, false
	}

	start := time.Now()
	est, err := s.estimator.Estimate(profile, s.dataset)
	metrics.ObserveEstimates(metrics.ModeSingle, []*types.Estimate{est}, err, time.Since(start))
	if err != nil {
		s.failRequest(w, r, err)
		return nil, false
	}

	s.logger.Debug("estimate computed",
		zap.String("request_id", RequestID(r.Context())),
		zap.String("major_group", est.InputsUsed.MajorGroup),
		zap.String("region", est.InputsUsed.Region),
		zap.Int("confidence", est.Confidence.Score),
	)
	return est, true
}

// handleEstimateBatch estimates up to types.MaxBatchProfiles profiles in one call
func (s *Server) handleEstimateBatch(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBatchBytes))
	dec.UseNumber()

	var req types.BatchEstimateRequest
	if err := dec.Decode(&req); err != nil {
		s.failRequest(w, r, decodeError(err))
		return
	}
	if err := req.Validate(); err != nil {
		s.failRequest(w, r, &ErrValidation{Field: "profiles", Message: batchValidationMessage(err)})
		return
	}

	start := time.Now()
	results, err := s.estimator.EstimateBatch(r.Context(), req.Profiles, s.dataset, s.batchLimit)
	metrics.ObserveEstimates(metrics.ModeBatch, results, err, time.Since(start))
	if err != nil {
		s.failRequest(w, r, err)
		return
	}

	s.logger.Debug("batch computed",
		zap.String("request_id", RequestID(r.Context())),
		zap.Int("profiles", len(results)),
		zap.Duration("duration", time.Since(start)),
	)
	s.jsonResponse(w, http.StatusOK, types.BatchEstimateResponse{Results: results})
}

// handleOptions returns the selectable dataset categories
func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.options)
}

// decodeError keeps body-size errors and turns everything else into a validation error.
func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
}

func batchValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Tag() {
		case "required", "min":
			return "at least one profile is required"
		case "max":
			return fmt.Sprintf("at most %d profiles are allowed", types.MaxBatchProfiles)
		}
	}
	return err.Error()
}
