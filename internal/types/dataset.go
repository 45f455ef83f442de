// Package types provides type definitions for structured data used throughout the salary-predictor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Dataset is the reference table of compensation baselines and multipliers.
// It is treated as a read-only snapshot by every consumer.
type Dataset struct {
	MajorGroups             map[string]MajorGroup `json:"major_groups" yaml:"major_groups"`
	Regions                 []string              `json:"regions" yaml:"regions"`
	SchoolTierMultipliers   map[string]float64    `json:"school_tier_multipliers" yaml:"school_tier_multipliers"`
	InternshipMultipliers   map[string]float64    `json:"internship_multipliers" yaml:"internship_multipliers"`
	GPABands                []GPABand             `json:"gpa_bands" yaml:"gpa_bands"`
	RegionCOLMultipliers    map[string]float64    `json:"region_col_multipliers" yaml:"region_col_multipliers"`
	HighCostMetroMultiplier float64               `json:"high_cost_metro_multiplier" yaml:"high_cost_metro_multiplier"`
	Skills                  map[string]float64    `json:"skills" yaml:"skills"`
	MaxSkillsBoost          *float64              `json:"max_skills_boost,omitempty" yaml:"max_skills_boost,omitempty"` // nil means 0.10
	MajorSkillFocus         map[string][]string   `json:"major_skill_focus" yaml:"major_skill_focus"`
}

// MajorGroup holds the per-region starting baselines for one field of study.
type MajorGroup struct {
	Baselines    map[string]float64 `json:"baselines" yaml:"baselines"`
	GrowthFactor float64            `json:"growth_factor" yaml:"growth_factor"` // 0.0 (slow) to 1.0 (fast)
}

// GPABand is a labeled inclusive GPA interval with its multiplier.
type GPABand struct {
	Min        float64 `json:"min" yaml:"min"`
	Max        float64 `json:"max" yaml:"max"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Label      string  `json:"label" yaml:"label"`
}

// HasRegion reports whether name is one of the dataset regions.
func (d *Dataset) HasRegion(name string) bool {
	for _, r := range d.Regions {
		if r == name {
			return true
		}
	}
	return false
}
