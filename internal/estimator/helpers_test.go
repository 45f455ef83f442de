package estimator

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func newTestEstimator() *Estimator {
	return New(WithClock(fixedClock))
}

func float64Ptr(v float64) *float64 { return &v }

// testDataset mirrors testdata/salary_data.json at the repository root.
func testDataset() *types.Dataset {
	return &types.Dataset{
		MajorGroups: map[string]types.MajorGroup{
			"Engineering": {
				Baselines:    map[string]float64{"Northeast": 78000, "Midwest": 72000, "South": 70000, "West": 82000},
				GrowthFactor: 0.8,
			},
			"Business": {
				Baselines:    map[string]float64{"Northeast": 62000, "Midwest": 56000, "South": 55000, "West": 64000},
				GrowthFactor: 0.5,
			},
			"Arts": {
				Baselines:    map[string]float64{"West": 45000},
				GrowthFactor: 0.2,
			},
			"Other/Unknown": {
				Baselines:    map[string]float64{"Northeast": 52000, "Midwest": 48000, "South": 47000, "West": 54000},
				GrowthFactor: 0.3,
			},
		},
		Regions: []string{"Northeast", "Midwest", "South", "West"},
		SchoolTierMultipliers: map[string]float64{
			"Tier1":             1.15,
			"Tier2":             1.05,
			"Community College": 0.92,
			"Other":             0.97,
		},
		InternshipMultipliers: map[string]float64{"0": 1.0, "1": 1.04, "2": 1.08, "3": 1.10},
		GPABands: []types.GPABand{
			{Min: 3.7, Max: 4.0, Multiplier: 1.06, Label: "3.7-4.0"},
			{Min: 3.3, Max: 3.69, Multiplier: 1.03, Label: "3.3-3.69"},
			{Min: 3.0, Max: 3.29, Multiplier: 1.0, Label: "3.0-3.29"},
			{Min: 0.0, Max: 2.99, Multiplier: 0.96, Label: "<3.0"},
		},
		RegionCOLMultipliers:    map[string]float64{"Northeast": 1.05, "Midwest": 0.97, "South": 0.95, "West": 1.08},
		HighCostMetroMultiplier: 1.10,
		Skills: map[string]float64{
			"Python":           0.03,
			"SQL":              0.02,
			"Excel":            0.01,
			"Machine Learning": 0.05,
			"CAD":              0.03,
			"Cloud":            0.04,
		},
		MaxSkillsBoost: float64Ptr(0.10),
		MajorSkillFocus: map[string][]string{
			"Engineering":   {"Python", "CAD", "Machine Learning"},
			"Business":      {"Excel", "SQL"},
			"Other/Unknown": {"Excel", "Python"},
		},
	}
}

// cloneDataset deep-copies a dataset through JSON.
func cloneDataset(t *testing.T, ds *types.Dataset) *types.Dataset {
	t.Helper()
	data, err := json.Marshal(ds)
	require.NoError(t, err)
	var out types.Dataset
	require.NoError(t, json.Unmarshal(data, &out))
	return &out
}

func goldenProfile() *types.Profile {
	return &types.Profile{
		MajorGroup:          "Engineering",
		Region:              "Midwest",
		SchoolTier:          "Tier1",
		Internships:         "2",
		GPA:                 3.8,
		GraduationYear:      2024,
		WorkExperienceYears: 1,
		Skills:              []string{"Python", "SQL"},
		HighCostMetro:       false,
	}
}
