// Package types provides type definitions for structured data used throughout the salary-predictor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"io"
)

// Profile is the caller-supplied graduate profile. Every field is an untyped value
// because callers send strings, numbers, booleans or nothing at all; the estimator
// coerces each one on its own.
type Profile struct {
	MajorGroup          any `json:"major_group,omitempty"`
	Region              any `json:"region,omitempty"`
	SchoolTier          any `json:"school_tier,omitempty"`
	Internships         any `json:"internships,omitempty"`
	GPA                 any `json:"gpa,omitempty"`
	GraduationYear      any `json:"graduation_year,omitempty"`
	WorkExperienceYears any `json:"work_experience_years,omitempty"`
	Skills              any `json:"skills,omitempty"`
	HighCostMetro       any `json:"high_cost_metro,omitempty"`
}

// DecodeProfile decodes a profile keeping numeric literals as json.Number,
// so "2" and "2.0" stay distinguishable.
func DecodeProfile(r io.Reader) (*Profile, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseProfile is DecodeProfile over a byte slice.
func ParseProfile(data []byte) (*Profile, error) {
	return DecodeProfile(bytes.NewReader(data))
}

// DecodeProfiles decodes a JSON array of profiles with the same number handling as DecodeProfile.
func DecodeProfiles(r io.Reader) ([]Profile, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var profiles []Profile
	if err := dec.Decode(&profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
