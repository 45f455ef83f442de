package estimator

import "github.com/jonathan/salary-predictor/internal/types"

// ValidateDataset checks the keys the estimator falls back to.
// It does not check value ranges or the overall shape; that belongs to the loader.
func ValidateDataset(ds *types.Dataset) error {
	if ds == nil {
		return &InvalidDatasetError{Message: "dataset is nil"}
	}
	if _, ok := ds.MajorGroups[FallbackMajor]; !ok {
		return &InvalidDatasetError{Field: "major_groups", Key: FallbackMajor}
	}
	if _, ok := ds.SchoolTierMultipliers[FallbackSchoolTier]; !ok {
		return &InvalidDatasetError{Field: "school_tier_multipliers", Key: FallbackSchoolTier}
	}
	if _, ok := ds.InternshipMultipliers[DefaultInternships]; !ok {
		return &InvalidDatasetError{Field: "internship_multipliers", Key: DefaultInternships}
	}
	if _, ok := ds.MajorSkillFocus[FallbackMajor]; !ok {
		return &InvalidDatasetError{Field: "major_skill_focus", Key: FallbackMajor}
	}
	return nil
}
