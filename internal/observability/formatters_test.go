package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEstimate() *types.Estimate {
	gpa := 3.8
	year := 2024
	return &types.Estimate{
		Starting: types.SalaryRange{Low: 86317.21, Mid: 98087.73, High: 109858.26},
		Year5:    types.SalaryRange{Low: 140697.05, Mid: 159883.01, High: 179068.97},
		Year10:   types.SalaryRange{Low: 208887.63, Mid: 237372.31, High: 265856.99},
		Confidence: types.Confidence{
			Score:   100,
			Reasons: []string{"Inputs are complete and align with dataset categories."},
		},
		Drivers: []string{
			"Major + region baseline: $72,000",
			"School tier multiplier: 1.15x",
		},
		Tips: []string{
			"Add high-value skills for your field: CAD, Machine Learning.",
			"Target higher-paying metro markets if location flexibility is possible.",
			"Network with alumni and tailor applications to role-specific outcomes.",
			"Use certifications + portfolio projects to offset school-tier signaling, especially when applying to roles that screen heavily on school name.",
		},
		InputsUsed: types.InputsUsed{
			MajorGroup:     "Engineering",
			Region:         "Midwest",
			SchoolTier:     "Tier1",
			GraduationYear: &year,
			GPA:            &gpa,
			Internships:    "2",
			Skills:         []string{"Python", "SQL"},
		},
	}
}

func TestPrintEstimate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEstimate(sampleEstimate())
	output := buf.String()

	assert.Contains(t, output, "SALARY ESTIMATE")
	assert.Contains(t, output, "DRIVERS")
	assert.Contains(t, output, "TIPS")
	assert.Contains(t, output, "Engineering")
	assert.Contains(t, output, "$98,088")
	assert.Contains(t, output, "$237,372")
	assert.Contains(t, output, "Confidence: 100/100")
	assert.Contains(t, output, "• Major + region baseline: $72,000")
	assert.Contains(t, output, "1. Add high-value skills for your field: CAD, Machine Learning.")
	assert.Contains(t, output, "school name.", "long tips are wrapped, not truncated")

	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintEstimate_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEstimate(nil)
	assert.Empty(t, buf.String())
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		skills = append(skills, "Skill"+string(rune('A'+i)))
	}
	p.PrintOptions(&types.Options{
		MajorGroups: []string{"Business", "Engineering", "Other/Unknown"},
		Regions:     []string{"Northeast", "Midwest"},
		SchoolTiers: []string{"Other", "Tier1"},
		Internships: []string{"0", "1", "2"},
		Skills:      skills,
	})
	output := buf.String()

	assert.Contains(t, output, "DATASET OPTIONS")
	assert.Contains(t, output, "Major groups (3):")
	assert.Contains(t, output, "• Other/Unknown")
	assert.Contains(t, output, "Skills (15):")
	assert.Contains(t, output, "... and 3 more")
	assert.NotContains(t, output, "SkillO")
}

func TestWrapLine(t *testing.T) {
	t.Run("short line untouched", func(t *testing.T) {
		assert.Equal(t, []string{"  • short"}, wrapLine("  • short", 20))
	})

	t.Run("bullet continuation is indented", func(t *testing.T) {
		got := wrapLine("  • one two three four five", 14)
		require.Len(t, got, 3)
		assert.Equal(t, "  • one two", got[0])
		assert.Equal(t, "    three four", got[1])
		assert.Equal(t, "    five", got[2])
	})

	t.Run("single long word is kept whole", func(t *testing.T) {
		assert.Equal(t, []string{"supercalifragilistic"}, wrapLine("supercalifragilistic", 5))
	})
}
