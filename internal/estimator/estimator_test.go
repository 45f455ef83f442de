package estimator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_GoldenProfile(t *testing.T) {
	est, err := newTestEstimator().Estimate(goldenProfile(), testDataset())
	require.NoError(t, err)

	// 72000 * 1.15 * 1.06 * 1.08 * 0.97 * 1.0 * 1.016 * 1.05
	const mid = 98087.73335424
	assert.InDelta(t, 98087.73, est.Starting.Mid, 0.001)
	assert.InDelta(t, 86317.21, est.Starting.Low, 0.001)
	assert.InDelta(t, 109858.26, est.Starting.High, 0.001)

	// growth factor 0.8 gives 1.63 and 2.42
	assert.InDelta(t, mid*1.63, est.Year5.Mid, 0.006)
	assert.InDelta(t, 159883.01, est.Year5.Mid, 0.001)
	assert.InDelta(t, 237372.31, est.Year10.Mid, 0.001)

	assert.Equal(t, 100, est.Confidence.Score)
	assert.Equal(t, []string{reasonComplete}, est.Confidence.Reasons)

	assert.Equal(t, []string{
		"Major + region baseline: $72,000",
		"School tier multiplier: 1.15x",
		"GPA band (3.7-4.0) multiplier: 1.06x",
		"Internships multiplier: 1.08x",
		"Skills boost: +5.0%",
		"Regional cost adjustment: 0.97x",
		"High-cost metro adjustment: 1.00x",
		"Work experience adjustment: 1.02x",
	}, est.Drivers)

	assert.Equal(t, []string{
		"Add high-value skills for your field: CAD, Machine Learning.",
		tipMetro,
		tipNetworking,
		tipNetworking,
	}, est.Tips)

	used := est.InputsUsed
	assert.Equal(t, "Engineering", used.MajorGroup)
	assert.Equal(t, "Midwest", used.Region)
	assert.Equal(t, "Tier1", used.SchoolTier)
	assert.Equal(t, "2", used.Internships)
	require.NotNil(t, used.GPA)
	assert.Equal(t, 3.8, *used.GPA)
	require.NotNil(t, used.GraduationYear)
	assert.Equal(t, 2024, *used.GraduationYear)
	assert.Equal(t, 1.0, used.WorkExperienceYears)
	assert.Equal(t, []string{"Python", "SQL"}, used.Skills)
	assert.False(t, used.HighCostMetro)
}

func TestEstimate_EmptyProfile(t *testing.T) {
	est, err := newTestEstimator().Estimate(&types.Profile{}, testDataset())
	require.NoError(t, err)

	assert.Equal(t, FallbackMajor, est.InputsUsed.MajorGroup)
	assert.Equal(t, DefaultRegion, est.InputsUsed.Region)
	assert.Equal(t, FallbackSchoolTier, est.InputsUsed.SchoolTier)
	assert.Equal(t, DefaultInternships, est.InputsUsed.Internships)
	assert.Nil(t, est.InputsUsed.GPA)
	assert.Nil(t, est.InputsUsed.GraduationYear)
	assert.Empty(t, est.InputsUsed.Skills)

	// every deduction fires: 100-16-12-8-4-6-4
	assert.Equal(t, 50, est.Confidence.Score)
	assert.LessOrEqual(t, est.Confidence.Score, 54)
	assert.Equal(t, []string{
		reasonUnknownMajor,
		reasonUnknownRegion,
		reasonMissingGradYear,
		reasonMissingGPA,
		reasonNoSkills,
		reasonGenericTier,
	}, est.Confidence.Reasons)

	// 48000 * 0.97 (tier Other) * 0.97 (Midwest)
	assert.InDelta(t, 45163.20, est.Starting.Mid, 0.001)

	assert.Equal(t, []string{
		tipFirstInternship,
		tipAddGPA,
		"Add high-value skills for your field: Excel, Python.",
		tipMetro,
		tipExperience,
		tipCertifications,
	}, est.Tips)
}

func TestEstimate_NilProfile(t *testing.T) {
	fromNil, err := newTestEstimator().Estimate(nil, testDataset())
	require.NoError(t, err)
	fromEmpty, err := newTestEstimator().Estimate(&types.Profile{}, testDataset())
	require.NoError(t, err)
	assert.Equal(t, fromEmpty, fromNil)
}

func TestEstimate_Idempotent(t *testing.T) {
	e := newTestEstimator()
	ds := testDataset()

	first, err := e.Estimate(goldenProfile(), ds)
	require.NoError(t, err)
	second, err := e.Estimate(goldenProfile(), ds)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEstimate_DoesNotMutateDataset(t *testing.T) {
	ds := testDataset()
	before := cloneDataset(t, ds)

	profiles := []*types.Profile{
		goldenProfile(),
		{},
		{MajorGroup: "Arts", Region: "Atlantis", Skills: "Python, Cloud, CAD, Machine Learning"},
	}
	for _, p := range profiles {
		_, err := newTestEstimator().Estimate(p, ds)
		require.NoError(t, err)
	}

	assert.Equal(t, before, cloneDataset(t, ds))
}

func TestEstimate_ConfidenceAlwaysInRange(t *testing.T) {
	profiles := []*types.Profile{
		{},
		goldenProfile(),
		{MajorGroup: 42, Region: []any{"x"}, GPA: "n/a", GraduationYear: "soon", Skills: 7},
		{MajorGroup: "Other/Unknown", GraduationYear: 1900},
		{SchoolTier: "Community College", Internships: 3, GPA: "2.1"},
	}
	for _, p := range profiles {
		est, err := newTestEstimator().Estimate(p, testDataset())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, est.Confidence.Score, minConfidence)
		assert.LessOrEqual(t, est.Confidence.Score, maxConfidence)
		assert.NotEmpty(t, est.Confidence.Reasons)
		assert.Len(t, est.Drivers, 8)
		assert.GreaterOrEqual(t, len(est.Tips), minTips)
		assert.LessOrEqual(t, len(est.Tips), maxTips)
	}
}

func TestEstimate_ExperienceIsMonotonic(t *testing.T) {
	e := newTestEstimator()
	ds := testDataset()

	var prev *types.Estimate
	for _, years := range []float64{0, 0.5, 1, 2, 3.5, 5, 7} {
		p := goldenProfile()
		p.WorkExperienceYears = years

		est, err := e.Estimate(p, ds)
		require.NoError(t, err)
		if prev != nil {
			assert.GreaterOrEqual(t, est.Starting.Mid, prev.Starting.Mid, "years=%v", years)
			assert.GreaterOrEqual(t, est.Year5.Mid, prev.Year5.Mid, "years=%v", years)
			assert.GreaterOrEqual(t, est.Year10.Mid, prev.Year10.Mid, "years=%v", years)
		}
		prev = est
	}
}

func TestEstimate_SkillBoostIsCapped(t *testing.T) {
	p := goldenProfile()
	p.Skills = []string{"Python", "Machine Learning", "Cloud", "CAD"} // 0.15 before the cap

	est, err := newTestEstimator().Estimate(p, testDataset())
	require.NoError(t, err)
	assert.Equal(t, "Skills boost: +10.0%", est.Drivers[4])

	// same profile priced with exactly the cap
	capped := goldenProfile()
	capped.Skills = []string{"Machine Learning", "Cloud", "Excel"}
	want, err := newTestEstimator().Estimate(capped, testDataset())
	require.NoError(t, err)
	assert.InDelta(t, want.Starting.Mid, est.Starting.Mid, 0.011)
}

func TestEstimate_DefaultMaxSkillsBoost(t *testing.T) {
	ds := testDataset()
	ds.MaxSkillsBoost = nil

	p := goldenProfile()
	p.Skills = []string{"Python", "Machine Learning", "Cloud", "CAD"}

	est, err := newTestEstimator().Estimate(p, ds)
	require.NoError(t, err)
	assert.Equal(t, "Skills boost: +10.0%", est.Drivers[4])
}

func TestEstimate_MissingBaselineFallsBack(t *testing.T) {
	p := goldenProfile()
	p.MajorGroup = "Arts" // no Midwest baseline

	est, err := newTestEstimator().Estimate(p, testDataset())
	require.NoError(t, err)
	assert.Equal(t, "Major + region baseline: $60,000", est.Drivers[0])
}

func TestEstimate_DefaultRegionOutsideDataset(t *testing.T) {
	ds := testDataset()
	ds.Regions = []string{"Northeast", "West"}
	delete(ds.RegionCOLMultipliers, "Midwest")

	est, err := newTestEstimator().Estimate(&types.Profile{MajorGroup: "Engineering", Region: "Midwest"}, ds)
	require.NoError(t, err)

	assert.Equal(t, DefaultRegion, est.InputsUsed.Region)
	assert.Contains(t, est.Confidence.Reasons, reasonUnknownRegion)
	assert.Equal(t, "Regional cost adjustment: 1.00x", est.Drivers[5])
	// Engineering still has a Midwest baseline
	assert.Equal(t, "Major + region baseline: $72,000", est.Drivers[0])
}

func TestEstimate_HighCostMetro(t *testing.T) {
	p := goldenProfile()
	p.HighCostMetro = true

	est, err := newTestEstimator().Estimate(p, testDataset())
	require.NoError(t, err)
	assert.Equal(t, "High-cost metro adjustment: 1.10x", est.Drivers[6])
	assert.NotContains(t, est.Tips, tipMetro)
	assert.InDelta(t, 98087.73335424*1.1, est.Starting.Mid, 0.006)
}

func TestEstimate_InvalidDataset(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ds *types.Dataset)
		field  string
	}{
		{"missing fallback major", func(ds *types.Dataset) { delete(ds.MajorGroups, FallbackMajor) }, "major_groups"},
		{"missing Other tier", func(ds *types.Dataset) { delete(ds.SchoolTierMultipliers, FallbackSchoolTier) }, "school_tier_multipliers"},
		{"missing zero internships", func(ds *types.Dataset) { delete(ds.InternshipMultipliers, DefaultInternships) }, "internship_multipliers"},
		{"missing fallback focus", func(ds *types.Dataset) { delete(ds.MajorSkillFocus, FallbackMajor) }, "major_skill_focus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := testDataset()
			tt.mutate(ds)

			est, err := newTestEstimator().Estimate(goldenProfile(), ds)
			require.Error(t, err)
			assert.Nil(t, est)
			assert.True(t, errors.Is(err, ErrInvalidDataset))

			var dsErr *InvalidDatasetError
			require.True(t, errors.As(err, &dsErr))
			assert.Equal(t, tt.field, dsErr.Field)
		})
	}
}

func TestEstimate_NilDataset(t *testing.T) {
	_, err := Estimate(goldenProfile(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataset)
	assert.Equal(t, "invalid dataset: dataset is nil", err.Error())
}

func TestEstimate_JSONShape(t *testing.T) {
	est, err := newTestEstimator().Estimate(&types.Profile{}, testDataset())
	require.NoError(t, err)

	data, err := json.Marshal(est)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"starting", "year5", "year10", "confidence", "drivers", "tips", "inputs_used"} {
		assert.Contains(t, doc, key)
	}

	used := doc["inputs_used"].(map[string]any)
	assert.Nil(t, used["gpa"])
	assert.Nil(t, used["graduation_year"])
	assert.Equal(t, []any{}, used["skills"])
}

func TestEstimate_OverflowingNumbers(t *testing.T) {
	t.Run("infinite experience uses the cap", func(t *testing.T) {
		for _, years := range []any{"inf", "1e999", json.Number("1e999")} {
			est, err := newTestEstimator().Estimate(&types.Profile{WorkExperienceYears: years}, testDataset())
			require.NoError(t, err)

			assert.Equal(t, 5.0, est.InputsUsed.WorkExperienceYears, "input %#v", years)
			assert.Contains(t, est.Drivers, "Work experience adjustment: 1.08x")
			assert.NotContains(t, est.Tips, tipExperience)
		}
	})

	t.Run("huge graduation year is out of range", func(t *testing.T) {
		for _, year := range []any{"1e12", json.Number("3000000000")} {
			est, err := newTestEstimator().Estimate(&types.Profile{GraduationYear: year}, testDataset())
			require.NoError(t, err)

			require.NotNil(t, est.InputsUsed.GraduationYear, "input %#v", year)
			assert.Contains(t, est.Confidence.Reasons, reasonAtypicalGradYear)
			assert.NotContains(t, est.Confidence.Reasons, reasonMissingGradYear)

			_, err = json.Marshal(est)
			assert.NoError(t, err)
		}
	})
}
