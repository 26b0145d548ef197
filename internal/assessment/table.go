package assessment

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// AgeBand awards Points when age is strictly below Under.
type AgeBand struct {
	Under  int     `yaml:"under"`
	Points float64 `yaml:"points"`
}

// Weights are the point values of the lifestyle factors.
type Weights struct {
	GenderMale          float64 `yaml:"genderMale"`
	Smoking             float64 `yaml:"smoking"`
	AlcoholRegular      float64 `yaml:"alcoholRegular"`
	AlcoholOccasional   float64 `yaml:"alcoholOccasional"`
	ExerciseNever       float64 `yaml:"exerciseNever"`
	ExerciseLight       float64 `yaml:"exerciseLight"`
	PerCondition        float64 `yaml:"perCondition"`
	LowRelaxation       float64 `yaml:"lowRelaxation"`
	HighScreenTime      float64 `yaml:"highScreenTime"`
	LowSocialConnection float64 `yaml:"lowSocialConnection"`
}

// MentalWeights are the point values of the mental-health sub-score.
type MentalWeights struct {
	StressHigh      float64 `yaml:"stressHigh"`
	StressElevated  float64 `yaml:"stressElevated"`
	WellbeingLow    float64 `yaml:"wellbeingLow"`
	WellbeingFair   float64 `yaml:"wellbeingFair"`
	AnxietyHigh     float64 `yaml:"anxietyHigh"`
	AnxietyElevated float64 `yaml:"anxietyElevated"`
	SleepPoor       float64 `yaml:"sleepPoor"`
	SleepFair       float64 `yaml:"sleepFair"`
	PerIssue        float64 `yaml:"perIssue"`
	NoSupport       float64 `yaml:"noSupport"`
}

// Band is one risk category. A nil Max marks the open-ended last band.
type Band struct {
	Max             *float64 `yaml:"max,omitempty"`
	Category        string   `yaml:"category"`
	Recommendations []string `yaml:"recommendations"`
}

// Table is the complete, versioned scoring configuration.
type Table struct {
	Version      string        `yaml:"version"`
	AgeBands     []AgeBand     `yaml:"ageBands"`
	AgeOtherwise float64       `yaml:"ageOtherwise"`
	Weights      Weights       `yaml:"weights"`
	Mental       MentalWeights `yaml:"mental"`
	Bands        []Band        `yaml:"bands"`
}

func bound(v float64) *float64 { return &v }

// DefaultTable returns a fresh copy of the v1 table.
func DefaultTable() *Table {
	return &Table{
		Version: "v1",
		AgeBands: []AgeBand{
			{Under: 30, Points: 1},
			{Under: 50, Points: 2},
		},
		AgeOtherwise: 3,
		Weights: Weights{
			GenderMale:          1,
			Smoking:             3,
			AlcoholRegular:      2,
			AlcoholOccasional:   1,
			ExerciseNever:       3,
			ExerciseLight:       1,
			PerCondition:        2,
			LowRelaxation:       2,
			HighScreenTime:      2,
			LowSocialConnection: 2,
		},
		Mental: MentalWeights{
			StressHigh:      3,
			StressElevated:  2,
			WellbeingLow:    3,
			WellbeingFair:   1,
			AnxietyHigh:     3,
			AnxietyElevated: 1,
			SleepPoor:       2,
			SleepFair:       1,
			PerIssue:        1.5,
			NoSupport:       1,
		},
		Bands: []Band{
			{
				Max:      bound(5),
				Category: "Very Low Risk",
				Recommendations: []string{
					"Maintain your current healthy lifestyle!",
					"Continue with regular health checkups.",
				},
			},
			{
				Max:      bound(10),
				Category: "Low Risk",
				Recommendations: []string{
					"Consider adding more physical activity to your routine.",
					"Maintain a balanced diet with plenty of fruits and vegetables.",
					"Practice stress management techniques.",
				},
			},
			{
				Max:      bound(15),
				Category: "Moderate Risk",
				Recommendations: []string{
					"Increase your weekly exercise frequency.",
					"Limit screen time and take regular breaks.",
					"Consider consulting a health professional for a checkup.",
					"Practice mindfulness or meditation.",
				},
			},
			{
				Max:      bound(20),
				Category: "High Risk",
				Recommendations: []string{
					"Quit smoking if applicable and limit unhealthy habits.",
					"Schedule a comprehensive health checkup soon.",
					"Establish a regular exercise routine (3-5 times weekly).",
					"Consider professional mental health support if needed.",
				},
			},
			{
				Category: "Very High Risk",
				Recommendations: []string{
					"Consult a healthcare professional immediately for evaluation.",
					"Implement significant lifestyle changes with professional guidance.",
					"Prioritize stress reduction and mental health support.",
					"Establish regular medical follow-ups for monitoring.",
				},
			},
		},
	}
}

// LoadTable overlays the YAML document at path onto the default table.
// Keys absent from the document keep their default value; lists are replaced whole.
func LoadTable(path string) (*Table, error) {
	table := DefaultTable()
	if path == "" {
		return table, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring table: %w", err)
	}
	if err := yaml.Unmarshal(raw, table); err != nil {
		return nil, fmt.Errorf("parse scoring table %s: %w", path, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("scoring table %s: %w", path, err)
	}
	return table, nil
}

// Validate keeps the score non-negative and the category partition total.
func (t *Table) Validate() error {
	if t.Version == "" {
		return errors.New("version is required")
	}
	if err := checkPoints("ageOtherwise", t.AgeOtherwise); err != nil {
		return err
	}
	for i, b := range t.AgeBands {
		if err := checkPoints(fmt.Sprintf("ageBands[%d].points", i), b.Points); err != nil {
			return err
		}
		if i > 0 && b.Under <= t.AgeBands[i-1].Under {
			return fmt.Errorf("ageBands[%d]: bounds must be ascending", i)
		}
	}

	weights := map[string]float64{
		"genderMale":          t.Weights.GenderMale,
		"smoking":             t.Weights.Smoking,
		"alcoholRegular":      t.Weights.AlcoholRegular,
		"alcoholOccasional":   t.Weights.AlcoholOccasional,
		"exerciseNever":       t.Weights.ExerciseNever,
		"exerciseLight":       t.Weights.ExerciseLight,
		"perCondition":        t.Weights.PerCondition,
		"lowRelaxation":       t.Weights.LowRelaxation,
		"highScreenTime":      t.Weights.HighScreenTime,
		"lowSocialConnection": t.Weights.LowSocialConnection,
		"stressHigh":          t.Mental.StressHigh,
		"stressElevated":      t.Mental.StressElevated,
		"wellbeingLow":        t.Mental.WellbeingLow,
		"wellbeingFair":       t.Mental.WellbeingFair,
		"anxietyHigh":         t.Mental.AnxietyHigh,
		"anxietyElevated":     t.Mental.AnxietyElevated,
		"sleepPoor":           t.Mental.SleepPoor,
		"sleepFair":           t.Mental.SleepFair,
		"perIssue":            t.Mental.PerIssue,
		"noSupport":           t.Mental.NoSupport,
	}
	for name, w := range weights {
		if err := checkPoints("weight "+name, w); err != nil {
			return err
		}
	}

	if len(t.Bands) == 0 {
		return errors.New("at least one band is required")
	}
	for i, b := range t.Bands {
		if b.Category == "" {
			return fmt.Errorf("bands[%d]: category is required", i)
		}
		last := i == len(t.Bands)-1
		if last && b.Max != nil {
			return fmt.Errorf("bands[%d]: last band must not have a max", i)
		}
		if !last && b.Max == nil {
			return fmt.Errorf("bands[%d]: only the last band may omit max", i)
		}
		if b.Max != nil && !finite(*b.Max) {
			return fmt.Errorf("bands[%d]: max must be a finite number", i)
		}
		if i > 0 && !last && *b.Max <= *t.Bands[i-1].Max {
			return fmt.Errorf("bands[%d]: max must be ascending", i)
		}
	}
	return nil
}

func checkPoints(name string, v float64) error {
	if !finite(v) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative", name)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
