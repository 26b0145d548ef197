package assessment

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MHK-404/Wellsure-backend/internal/models"
)

// 필드 별칭 (구버전 폼 호환)
var fieldAliases = map[string]string{
	"relaxationFrequency": "relaxation",
}

// Validator checks required fields and normalizes a raw request body.
type Validator struct {
	required []string
}

// NewValidator returns a validator requiring age plus the given fields.
func NewValidator(required ...string) *Validator {
	fields := []string{"age"}
	seen := map[string]bool{"age": true}
	for _, f := range required {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		fields = append(fields, f)
	}
	return &Validator{required: fields}
}

func (v *Validator) Required() []string {
	out := make([]string, len(v.required))
	copy(out, v.required)
	return out
}

// Validate returns a normalized copy of raw or a *ValidationError. raw is never modified.
// Unknown enum values fall back to their default and 0-10 levels are clamped.
func (v *Validator) Validate(raw map[string]any) (models.AssessmentInput, error) {
	var missing []string
	for _, f := range v.required {
		if isBlank(field(raw, f)) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return models.AssessmentInput{}, missingFields(missing)
	}

	age, ok := parseAge(raw["age"])
	if !ok {
		return models.AssessmentInput{}, invalidField("age",
			fmt.Sprintf("Age must be a whole number between %d and %d", MinAge, MaxAge))
	}

	in := models.AssessmentInput{
		Age:                 age,
		Gender:              enumValue(raw["gender"], genderValues, ""),
		Smoke:               enumValue(raw["smoke"], yesNoValues, DefaultSmoke),
		Alcohol:             enumValue(raw["alcohol"], alcoholValues, DefaultAlcohol),
		Exercise:            enumValue(raw["exercise"], exerciseValues, ""),
		Conditions:          stringSet(raw["conditions"], true),
		Stress:              level(raw["stress"]),
		MentalWellbeing:     level(raw["mentalWellbeing"]),
		Anxiety:             level(raw["anxiety"]),
		SleepQuality:        level(raw["sleepQuality"]),
		MentalHealthIssues:  stringSet(raw["mentalHealthIssues"], false),
		MentalSupport:       enumValue(raw["mentalSupport"], yesNoValues, DefaultMentalSupport),
		RelaxationFrequency: enumValue(field(raw, "relaxationFrequency"), relaxationValues, ""),
		ScreenTime:          enumValue(raw["screenTime"], screenTimeValues, ""),
		SocialConnection:    optionalLevel(raw["socialConnection"]),
	}
	return in, nil
}

// field reads key, falling back to its alias when the canonical key is blank.
func field(raw map[string]any, key string) any {
	val := raw[key]
	if alias, ok := fieldAliases[key]; ok && isBlank(val) {
		return raw[alias]
	}
	return val
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

// parseNumber accepts JSON numbers and numeric strings. NaN is rejected.
func parseNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case float64:
		n = t
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func parseAge(v any) (int, bool) {
	n, ok := parseNumber(v)
	if !ok || n != math.Trunc(n) {
		return 0, false
	}
	if n < MinAge || n > MaxAge {
		return 0, false
	}
	return int(n), true
}

func level(v any) int {
	n, ok := parseNumber(v)
	if !ok {
		return DefaultLevel
	}
	return clampLevel(n)
}

func optionalLevel(v any) *int {
	n, ok := parseNumber(v)
	if !ok {
		return nil
	}
	l := clampLevel(n)
	return &l
}

func clampLevel(n float64) int {
	n = math.Trunc(n)
	switch {
	case n < MinLevel:
		return MinLevel
	case n > MaxLevel:
		return MaxLevel
	}
	return int(n)
}

func enumValue(v any, values enum, def string) string {
	s, ok := v.(string)
	if !ok {
		return def
	}
	if canonical, ok := values[lower(s)]; ok {
		return canonical
	}
	return def
}

// stringSet trims entries, drops empty ones and collapses case-insensitive duplicates.
func stringSet(v any, skipNone bool) []string {
	var items []string
	switch t := v.(type) {
	case string:
		items = []string{t}
	case []string:
		items = t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := lower(item)
		if item == "" || seen[key] {
			continue
		}
		if skipNone && key == noneCondition {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
