package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/salary-predictor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "options", "-d", testDatasetPath, "--format", "json")
	require.NoError(t, err)

	var opts types.Options
	require.NoError(t, json.Unmarshal([]byte(out), &opts))

	assert.Equal(t, []string{"Arts", "Business", "Engineering", "Other/Unknown"}, opts.MajorGroups)
	assert.Equal(t, []string{"Northeast", "Midwest", "South", "West"}, opts.Regions)
	assert.Equal(t, []string{"0", "1", "2", "3"}, opts.Internships)
}

func TestOptionsCommand_Text(t *testing.T) {
	out, err := executeCommand(t, "options", "-d", testDatasetPath)
	require.NoError(t, err)

	assert.Contains(t, out, "DATASET OPTIONS")
	assert.Contains(t, out, "Major groups (4):")
	assert.Contains(t, out, "Skills (6):")
}

func TestOptionsCommand_DatasetFromConfig(t *testing.T) {
	abs, err := filepath.Abs(testDatasetPath)
	require.NoError(t, err)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("dataset_path: %q\n", abs)), 0644))

	out, err := executeCommand(t, "options", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Other/Unknown"`)
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"options", "-d", testDatasetPath, "--log-level", "verbose"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestOptionsCommand_UnsupportedFormat(t *testing.T) {
	_, err := executeCommand(t, "options", "-d", testDatasetPath, "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "csv"`)
}
