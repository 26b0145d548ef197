package assessment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
)

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultTable_IsValid(t *testing.T) {
	require.NoError(t, assessment.DefaultTable().Validate())
}

func TestLoadTable_EmptyPathReturnsDefault(t *testing.T) {
	table, err := assessment.LoadTable("")
	require.NoError(t, err)
	assert.Equal(t, assessment.DefaultTable(), table)
}

func TestLoadTable_OverlayKeepsUnsetWeights(t *testing.T) {
	path := writeTable(t, `
version: v1-no-gender
weights:
  genderMale: 0
mental:
  perIssue: 2
`)
	table, err := assessment.LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, "v1-no-gender", table.Version)
	assert.Equal(t, 0.0, table.Weights.GenderMale)
	assert.Equal(t, 3.0, table.Weights.Smoking)
	assert.Equal(t, 2.0, table.Mental.PerIssue)
	assert.Len(t, table.Bands, 5)
}

func TestLoadTable_ReplacesBands(t *testing.T) {
	path := writeTable(t, `
bands:
  - max: 8
    category: Low
    recommendations: [Keep going.]
  - category: High
    recommendations: [See a doctor.]
`)
	table, err := assessment.LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, "Low", table.Categorize(8).Name)
	assert.Equal(t, "High", table.Categorize(8.5).Name)
}

func TestLoadTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative weight", "weights:\n  smoking: -1\n"},
		{"negative mental weight", "mental:\n  noSupport: -0.5\n"},
		{"bounded last band", "bands:\n  - max: 5\n    category: Low\n"},
		{"open middle band", "bands:\n  - category: A\n  - category: B\n"},
		{"descending bands", "bands:\n  - max: 9\n    category: A\n  - max: 3\n    category: B\n  - category: C\n"},
		{"missing category", "bands:\n  - recommendations: [x]\n"},
		{"descending age bands", "ageBands:\n  - under: 50\n    points: 1\n  - under: 30\n    points: 2\n"},
		{"nan weight", "weights:\n  smoking: .nan\n"},
		{"inf weight", "weights:\n  smoking: .inf\n"},
		{"nan mental weight", "mental:\n  stressHigh: .nan\n"},
		{"inf age points", "ageOtherwise: .inf\n"},
		{"nan age band points", "ageBands:\n  - under: 30\n    points: .nan\n"},
		{"nan band max", "bands:\n  - max: .nan\n    category: A\n  - category: B\n"},
		{"inf band max", "bands:\n  - max: .inf\n    category: A\n  - category: B\n"},
		{"empty version", "version: \"\"\n"},
		{"not yaml", "weights: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := assessment.LoadTable(writeTable(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := assessment.LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
