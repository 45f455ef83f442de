// Package types provides type definitions for structured data used throughout the salary-predictor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Estimate is the projected salary outcome for one profile.
type Estimate struct {
	Starting   SalaryRange `json:"starting"`
	Year5      SalaryRange `json:"year5"`
	Year10     SalaryRange `json:"year10"`
	Confidence Confidence  `json:"confidence"`
	Drivers    []string    `json:"drivers"`
	Tips       []string    `json:"tips"`
	InputsUsed InputsUsed  `json:"inputs_used"`
}

// SalaryRange is a low/mid/high band around a point estimate, rounded to cents.
type SalaryRange struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// Confidence is a heuristic completeness score (35-100) with one reason per deduction.
type Confidence struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// InputsUsed echoes the normalized inputs the estimate was computed from.
type InputsUsed struct {
	MajorGroup          string   `json:"major_group"`
	Region              string   `json:"region"`
	SchoolTier          string   `json:"school_tier"`
	GraduationYear      *int     `json:"graduation_year"`
	GPA                 *float64 `json:"gpa"`
	Internships         string   `json:"internships"`
	Skills              []string `json:"skills"`
	WorkExperienceYears float64  `json:"work_experience_years"`
	HighCostMetro       bool     `json:"high_cost_metro"`
}

// Options lists the selectable categories of a dataset.
type Options struct {
	MajorGroups []string `json:"major_groups"`
	Regions     []string `json:"regions"`
	SchoolTiers []string `json:"school_tiers"`
	Internships []string `json:"internships"`
	Skills      []string `json:"skills"`
}
