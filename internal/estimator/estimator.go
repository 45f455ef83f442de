// Package estimator projects starting, 5-year and 10-year salaries for a graduate profile
// against a reference dataset of baselines, multipliers and skill valuations.
//
// The computation is deterministic and never fails on malformed profile input; every
// field degrades to a safe default that is reflected in the confidence reasons. Only a
// dataset missing one of its fallback keys aborts the call, with an *InvalidDatasetError.
package estimator

import (
	"time"

	"github.com/jonathan/salary-predictor/internal/types"
)

// Estimator computes salary estimates. The zero value is not usable; call New.
type Estimator struct {
	now func() time.Time
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithClock overrides the clock used for the graduation-year plausibility check.
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Estimator.
func New(opts ...Option) *Estimator {
	e := &Estimator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEstimator = New()

// Estimate computes an estimate with the system clock.
func Estimate(profile *types.Profile, ds *types.Dataset) (*types.Estimate, error) {
	return defaultEstimator.Estimate(profile, ds)
}

// Estimate normalizes profile against ds, prices it and builds the advisory text.
// A nil profile is treated as empty. ds is only read.
func (e *Estimator) Estimate(profile *types.Profile, ds *types.Dataset) (*types.Estimate, error) {
	if err := ValidateDataset(ds); err != nil {
		return nil, err
	}

	n := normalizeProfile(profile, ds)
	p := price(n, ds)

	return &types.Estimate{
		Starting:   salaryRange(p.mid),
		Year5:      salaryRange(p.mid * p.growth5),
		Year10:     salaryRange(p.mid * p.growth10),
		Confidence: scoreConfidence(n, e.now()),
		Drivers:    buildDrivers(p),
		Tips:       buildTips(n, ds),
		InputsUsed: inputsUsed(n),
	}, nil
}

func inputsUsed(n normalizedProfile) types.InputsUsed {
	return types.InputsUsed{
		MajorGroup:          n.major,
		Region:              n.region,
		SchoolTier:          n.schoolTier,
		GraduationYear:      n.graduationYear,
		GPA:                 n.gpa,
		Internships:         n.internships,
		Skills:              n.skills,
		WorkExperienceYears: n.workExperienceYears,
		HighCostMetro:       n.highCostMetro,
	}
}
