package estimator

import (
	"github.com/jonathan/salary-predictor/internal/types"
)

const (
	defaultBaseSalary     = 60000.0
	defaultMaxSkillsBoost = 0.10
	experienceRate        = 0.016

	lowRatio  = 0.88
	highRatio = 1.12

	growth5Low   = 1.35
	growth5High  = 1.70
	growth10Low  = 1.70
	growth10High = 2.60

	unknownGPABand = "Unknown"
)

// pricing holds every factor of the salary model exactly as it entered the formula.
type pricing struct {
	baseSalary     float64
	schoolMult     float64
	gpaMult        float64
	gpaBand        string
	internshipMult float64
	regionCOLMult  float64
	metroMult      float64
	experienceMult float64
	skillBoost     float64
	mid            float64
	growthFactor   float64
	growth5        float64
	growth10       float64
}

// price resolves the multipliers for a normalized profile and combines them.
func price(n normalizedProfile, ds *types.Dataset) pricing {
	major := ds.MajorGroups[n.major]

	p := pricing{
		baseSalary:     lookupOr(major.Baselines, n.region, defaultBaseSalary),
		schoolMult:     ds.SchoolTierMultipliers[n.schoolTier],
		internshipMult: ds.InternshipMultipliers[n.internships],
		regionCOLMult:  lookupOr(ds.RegionCOLMultipliers, n.region, 1.0),
		metroMult:      1.0,
		experienceMult: 1.0 + experienceRate*n.workExperienceYears,
		growthFactor:   major.GrowthFactor,
	}
	p.gpaMult, p.gpaBand = gpaMultiplier(n.gpa, ds.GPABands)
	if n.highCostMetro {
		p.metroMult = ds.HighCostMetroMultiplier
	}
	p.skillBoost = skillBoost(n.skills, ds)

	p.mid = p.baseSalary *
		p.schoolMult *
		p.gpaMult *
		p.internshipMult *
		p.regionCOLMult *
		p.metroMult *
		p.experienceMult *
		(1.0 + p.skillBoost)

	p.growth5 = lerp(growth5Low, growth5High, p.growthFactor)
	p.growth10 = lerp(growth10Low, growth10High, p.growthFactor)

	return p
}

// gpaMultiplier returns the first band containing gpa (both ends inclusive).
func gpaMultiplier(gpa *float64, bands []types.GPABand) (float64, string) {
	if gpa == nil {
		return 1.0, unknownGPABand
	}
	for _, band := range bands {
		if band.Min <= *gpa && *gpa <= band.Max {
			return band.Multiplier, band.Label
		}
	}
	return 1.0, unknownGPABand
}

// skillBoost sums the boosts of the recognized skills and caps the total from above only.
func skillBoost(skills []string, ds *types.Dataset) float64 {
	total := 0.0
	for _, s := range skills {
		total += ds.Skills[s]
	}

	limit := defaultMaxSkillsBoost
	if ds.MaxSkillsBoost != nil {
		limit = *ds.MaxSkillsBoost
	}
	if total > limit {
		return limit
	}
	return total
}

// salaryRange expands a point estimate into a rounded low/mid/high band.
func salaryRange(mid float64) types.SalaryRange {
	return types.SalaryRange{
		Low:  roundTo(mid*lowRatio, 2),
		Mid:  roundTo(mid, 2),
		High: roundTo(mid*highRatio, 2),
	}
}

func lerp(low, high, factor float64) float64 {
	return low + (high-low)*clamp(factor, 0, 1)
}

func lookupOr(m map[string]float64, key string, def float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
