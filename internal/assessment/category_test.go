package assessment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
)

func TestCategorize_Boundaries(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{-1, "Very Low Risk"},
		{0, "Very Low Risk"},
		{5.0, "Very Low Risk"},
		{5.1, "Low Risk"},
		{10, "Low Risk"},
		{10.1, "Moderate Risk"},
		{15, "Moderate Risk"},
		{15.5, "High Risk"},
		{20, "High Risk"},
		{20.1, "Very High Risk"},
		{99, "Very High Risk"},
		{math.Inf(1), "Very High Risk"},
		{math.NaN(), "Very High Risk"},
	}

	table := assessment.DefaultTable()
	for _, tt := range tests {
		assert.Equal(t, tt.expected, table.Categorize(tt.score).Name, "score %v", tt.score)
	}
}

func TestCategorize_RecommendationsPerCategory(t *testing.T) {
	table := assessment.DefaultTable()
	for _, s := range []float64{0, 7, 12, 18, 30} {
		c := table.Categorize(s)
		assert.NotEmpty(t, c.Recommendations, c.Name)
	}
	assert.Equal(t, []string{"Very Low Risk", "Low Risk", "Moderate Risk", "High Risk", "Very High Risk"}, table.Categories())
}

func TestCategorize_ReturnsCopy(t *testing.T) {
	table := assessment.DefaultTable()
	c := table.Categorize(0)
	c.Recommendations[0] = "changed"

	assert.NotEqual(t, "changed", table.Categorize(0).Recommendations[0])
}
