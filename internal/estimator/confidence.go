package estimator

import (
	"time"

	"github.com/jonathan/salary-predictor/internal/types"
)

const (
	maxConfidence = 100
	minConfidence = 35

	penaltyUnknownMajor     = 16
	penaltyUnknownRegion    = 12
	penaltyMissingGradYear  = 8
	penaltyAtypicalGradYear = 8
	penaltyMissingGPA       = 4
	penaltyNoSkills         = 6
	penaltyGenericTier      = 4

	gradYearLookback  = 40
	gradYearLookahead = 6
)

const (
	reasonUnknownMajor     = "Major is Other/Unknown, so baseline matching is less precise."
	reasonUnknownRegion    = "Region missing or unknown; default region baseline used."
	reasonMissingGradYear  = "Graduation year missing."
	reasonAtypicalGradYear = "Graduation year is outside typical range."
	reasonMissingGPA       = "GPA not provided."
	reasonNoSkills         = "No recognized skills selected."
	reasonGenericTier      = "School tier is broad ('Other')."
	reasonComplete         = "Inputs are complete and align with dataset categories."
)

// scoreConfidence applies each deduction independently, in a fixed order, then clamps.
func scoreConfidence(n normalizedProfile, now time.Time) types.Confidence {
	score := maxConfidence
	reasons := make([]string, 0, 7)

	deduct := func(points int, reason string) {
		score -= points
		reasons = append(reasons, reason)
	}

	if !n.majorKnown {
		deduct(penaltyUnknownMajor, reasonUnknownMajor)
	}
	if !n.regionKnown {
		deduct(penaltyUnknownRegion, reasonUnknownRegion)
	}
	if n.graduationYear == nil {
		deduct(penaltyMissingGradYear, reasonMissingGradYear)
	} else {
		year := now.Year()
		if *n.graduationYear < year-gradYearLookback || *n.graduationYear > year+gradYearLookahead {
			deduct(penaltyAtypicalGradYear, reasonAtypicalGradYear)
		}
	}
	if n.gpa == nil {
		deduct(penaltyMissingGPA, reasonMissingGPA)
	}
	if len(n.skills) == 0 {
		deduct(penaltyNoSkills, reasonNoSkills)
	}
	if n.schoolTier == FallbackSchoolTier {
		deduct(penaltyGenericTier, reasonGenericTier)
	}

	score = max(minConfidence, min(maxConfidence, score))
	if len(reasons) == 0 {
		reasons = append(reasons, reasonComplete)
	}

	return types.Confidence{Score: score, Reasons: reasons}
}
