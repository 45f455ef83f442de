package estimator

import (
	"math"
	"strings"

	"github.com/jonathan/salary-predictor/internal/types"
)

const (
	// FallbackMajor is the universal major-group key every dataset must carry.
	FallbackMajor = "Other/Unknown"
	// DefaultRegion is used when the region is missing or unknown. It need not exist in the dataset.
	DefaultRegion = "Midwest"
	// FallbackSchoolTier is the generic school tier bucket.
	FallbackSchoolTier = "Other"
	// DefaultInternships is the internship count key used when the input is missing or unknown.
	DefaultInternships = "0"

	maxExperienceYears = 5.0
)

// normalizedProfile is a profile whose every field has been resolved to a dataset-valid value.
// gpa and graduationYear stay nil when the caller did not supply a usable value.
type normalizedProfile struct {
	major               string
	majorKnown          bool
	region              string
	regionKnown         bool
	schoolTier          string
	internships         string
	gpa                 *float64
	graduationYear      *int
	workExperienceYears float64
	skills              []string
	highCostMetro       bool
}

// normalizeProfile coerces every profile field independently. It never fails.
func normalizeProfile(p *types.Profile, ds *types.Dataset) normalizedProfile {
	if p == nil {
		p = &types.Profile{}
	}

	var n normalizedProfile
	n.major, n.majorKnown = resolveMajor(p.MajorGroup, ds)
	n.region, n.regionKnown = resolveRegion(p.Region, ds)
	n.schoolTier = resolveSchoolTier(p.SchoolTier, ds)
	n.internships = resolveInternships(p.Internships, ds)

	if gpa, ok := toFloat(p.GPA); ok && !math.IsInf(gpa, 0) {
		n.gpa = &gpa
	}
	if year, ok := toInt(p.GraduationYear); ok {
		n.graduationYear = &year
	}

	years, ok := toFloat(p.WorkExperienceYears)
	if !ok {
		years = 0
	}
	n.workExperienceYears = clamp(years, 0, maxExperienceYears)

	n.skills = recognizedSkills(p.Skills, ds)
	n.highCostMetro = truthy(p.HighCostMetro)

	return n
}

// resolveMajor matches the trimmed input against the dataset major groups.
// Any miss, "Other" included, resolves to FallbackMajor. Choosing the fallback
// label explicitly still counts as unknown.
func resolveMajor(v any, ds *types.Dataset) (string, bool) {
	input := strings.TrimSpace(stringOr(v, ""))
	if _, ok := ds.MajorGroups[input]; ok {
		return input, input != FallbackMajor
	}
	return FallbackMajor, false
}

func resolveRegion(v any, ds *types.Dataset) (string, bool) {
	input := strings.TrimSpace(stringOr(v, ""))
	if ds.HasRegion(input) {
		return input, true
	}
	return DefaultRegion, false
}

func resolveSchoolTier(v any, ds *types.Dataset) string {
	tier := strings.TrimSpace(stringOr(v, FallbackSchoolTier))
	if _, ok := ds.SchoolTierMultipliers[tier]; !ok {
		return FallbackSchoolTier
	}
	return tier
}

func resolveInternships(v any, ds *types.Dataset) string {
	count := DefaultInternships
	if truthy(v) {
		count = strings.TrimSpace(stringify(v))
	}
	if _, ok := ds.InternshipMultipliers[count]; !ok {
		return DefaultInternships
	}
	return count
}

// recognizedSkills keeps the skills the dataset prices, in caller order. Repeats are kept.
func recognizedSkills(v any, ds *types.Dataset) []string {
	valid := make([]string, 0)
	if !truthy(v) {
		return valid
	}
	for _, s := range toStringList(v) {
		if _, ok := ds.Skills[s]; ok {
			valid = append(valid, s)
		}
	}
	return valid
}
