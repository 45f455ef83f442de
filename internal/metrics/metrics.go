// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/jonathan/salary-predictor/internal/estimator"
	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for EstimatesTotal.
const (
	OutcomeOK             = "ok"
	OutcomeInvalidDataset = "invalid_dataset"
	OutcomeError          = "error"
)

var (
	EstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salary_estimates_total",
			Help: "Total number of salary estimates by outcome",
		},
		[]string{"mode", "outcome"},
	)

	EstimateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salary_estimate_duration_seconds",
			Help:    "Duration of single and batch estimation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"mode"},
	)

	EstimateConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "salary_estimate_confidence",
			Help:    "Distribution of confidence scores of produced estimates",
			Buckets: prometheus.LinearBuckets(35, 5, 14),
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salary_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "salary_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route"},
	)
)

// Estimation modes.
const (
	ModeSingle = "single"
	ModeBatch  = "batch"
)

// Outcome classifies an estimation error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, estimator.ErrInvalidDataset):
		return OutcomeInvalidDataset
	default:
		return OutcomeError
	}
}

// ObserveEstimates records one estimation call covering len(results) estimates.
func ObserveEstimates(mode string, results []*types.Estimate, err error, elapsed time.Duration) {
	EstimateDuration.WithLabelValues(mode).Observe(elapsed.Seconds())

	if err != nil {
		EstimatesTotal.WithLabelValues(mode, Outcome(err)).Inc()
		return
	}
	for _, est := range results {
		if est == nil {
			continue
		}
		EstimatesTotal.WithLabelValues(mode, OutcomeOK).Inc()
		EstimateConfidence.Observe(float64(est.Confidence.Score))
	}
}

// ObserveHTTP records a finished request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
