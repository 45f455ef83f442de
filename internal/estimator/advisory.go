package estimator

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jonathan/salary-predictor/internal/types"
)

const (
	minTips = 4
	maxTips = 6

	gpaTarget = 3.5
)

const (
	tipFirstInternship  = "Get at least 1 internship to strengthen your starting offer potential."
	tipSecondInternship = "Add a second internship/co-op for stronger early-career signal."
	tipAddGPA           = "Add GPA if strong to improve estimate confidence."
	tipImproveGPA       = "If possible, improve GPA toward 3.5+ for better recruiter filtering."
	tipFocusSkillsFmt   = "Add high-value skills for your field: %s."
	tipMetro            = "Target higher-paying metro markets if location flexibility is possible."
	tipExperience       = "Build practical experience via projects, part-time work, or freelance outcomes."
	tipCertifications   = "Use certifications + portfolio projects to offset school-tier signaling."
	tipNetworking       = "Network with alumni and tailor applications to role-specific outcomes."
)

// tierSignalingTiers are the school tiers that get the certifications tip.
var tierSignalingTiers = []string{"Community College", FallbackSchoolTier}

// buildDrivers describes each factor with the value that went into the formula.
func buildDrivers(p pricing) []string {
	return []string{
		fmt.Sprintf("Major + region baseline: $%s", humanize.Comma(int64(math.RoundToEven(p.baseSalary)))),
		fmt.Sprintf("School tier multiplier: %.2fx", p.schoolMult),
		fmt.Sprintf("GPA band (%s) multiplier: %.2fx", p.gpaBand, p.gpaMult),
		fmt.Sprintf("Internships multiplier: %.2fx", p.internshipMult),
		fmt.Sprintf("Skills boost: +%s%%", formatDecimal(roundTo(p.skillBoost*100, 1))),
		fmt.Sprintf("Regional cost adjustment: %.2fx", p.regionCOLMult),
		fmt.Sprintf("High-cost metro adjustment: %.2fx", p.metroMult),
		fmt.Sprintf("Work experience adjustment: %.2fx", p.experienceMult),
	}
}

// buildTips collects the improvement tips in a fixed order, pads them to minTips and caps them at maxTips.
func buildTips(n normalizedProfile, ds *types.Dataset) []string {
	tips := make([]string, 0, maxTips+1)

	switch n.internships {
	case "0":
		tips = append(tips, tipFirstInternship)
	case "1":
		tips = append(tips, tipSecondInternship)
	}

	if n.gpa == nil {
		tips = append(tips, tipAddGPA)
	} else if *n.gpa < gpaTarget {
		tips = append(tips, tipImproveGPA)
	}

	if missing := missingFocusSkills(n, ds); len(missing) > 0 {
		tips = append(tips, fmt.Sprintf(tipFocusSkillsFmt, strings.Join(missing[:min(2, len(missing))], ", ")))
	}

	if !n.highCostMetro {
		tips = append(tips, tipMetro)
	}

	if n.workExperienceYears < 1 {
		tips = append(tips, tipExperience)
	}

	if slices.Contains(tierSignalingTiers, n.schoolTier) {
		tips = append(tips, tipCertifications)
	}

	for len(tips) < minTips {
		tips = append(tips, tipNetworking)
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

// missingFocusSkills lists the recommended skills for the major that the profile lacks, in dataset order.
// The fallback major's list is used only when the major has no entry at all.
func missingFocusSkills(n normalizedProfile, ds *types.Dataset) []string {
	recommended, ok := ds.MajorSkillFocus[n.major]
	if !ok {
		recommended = ds.MajorSkillFocus[FallbackMajor]
	}

	missing := make([]string, 0, len(recommended))
	for _, s := range recommended {
		if !slices.Contains(n.skills, s) {
			missing = append(missing, s)
		}
	}
	return missing
}
