package assessment

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MHK-404/Wellsure-backend/internal/models"
)

// Breakdown is the scorer output before categorization.
type Breakdown struct {
	Total   decimal.Decimal
	Mental  decimal.Decimal
	Factors []models.Factor
}

// Scorer sums independent, non-negative contributions from a validated input.
type Scorer struct {
	table *Table
}

func NewScorer(table *Table) *Scorer {
	return &Scorer{table: table}
}

type tally struct {
	sum     decimal.Decimal
	factors []models.Factor
}

func (t *tally) add(name string, points float64) {
	if points == 0 {
		return
	}
	d := decimal.NewFromFloat(points)
	t.sum = t.sum.Add(d)
	t.factors = append(t.factors, models.Factor{Name: name, Points: d.InexactFloat64()})
}

// Score returns the total rounded to one decimal place.
func (s *Scorer) Score(in models.AssessmentInput) Breakdown {
	w := s.table.Weights
	t := &tally{}

	t.add("age", s.agePoints(in.Age))
	if in.Gender == GenderMale {
		t.add("gender", w.GenderMale)
	}
	if in.Smoke == Yes {
		t.add("smoking", w.Smoking)
	}
	switch in.Alcohol {
	case AlcoholRegularly:
		t.add("alcohol", w.AlcoholRegular)
	case AlcoholOccasionally:
		t.add("alcohol", w.AlcoholOccasional)
	}
	switch in.Exercise {
	case ExerciseNever:
		t.add("exercise", w.ExerciseNever)
	case ExerciseLight:
		t.add("exercise", w.ExerciseLight)
	}
	t.add("conditions", w.PerCondition*float64(countConditions(in.Conditions)))

	mental, mentalFactors := s.mental(in)
	t.sum = t.sum.Add(mental)
	t.factors = append(t.factors, mentalFactors...)

	if in.RelaxationFrequency == RelaxNever || in.RelaxationFrequency == RelaxRarely {
		t.add("relaxation", w.LowRelaxation)
	}
	if in.ScreenTime == ScreenHigh {
		t.add("screenTime", w.HighScreenTime)
	}
	if in.SocialConnection != nil && *in.SocialConnection < 5 {
		t.add("socialConnection", w.LowSocialConnection)
	}

	if t.factors == nil {
		t.factors = []models.Factor{}
	}
	return Breakdown{
		Total:   t.sum.Round(1),
		Mental:  mental.Round(1),
		Factors: t.factors,
	}
}

// MentalHealthScore is the mental-health sub-score on its own.
func (s *Scorer) MentalHealthScore(in models.AssessmentInput) decimal.Decimal {
	sub, _ := s.mental(in)
	return sub.Round(1)
}

func (s *Scorer) mental(in models.AssessmentInput) (decimal.Decimal, []models.Factor) {
	m := s.table.Mental
	t := &tally{}

	switch {
	case in.Stress > 7:
		t.add("stress", m.StressHigh)
	case in.Stress > 5:
		t.add("stress", m.StressElevated)
	}
	switch {
	case in.MentalWellbeing < 4:
		t.add("wellbeing", m.WellbeingLow)
	case in.MentalWellbeing < 6:
		t.add("wellbeing", m.WellbeingFair)
	}
	switch {
	case in.Anxiety > 7:
		t.add("anxiety", m.AnxietyHigh)
	case in.Anxiety > 5:
		t.add("anxiety", m.AnxietyElevated)
	}
	switch {
	case in.SleepQuality < 4:
		t.add("sleepQuality", m.SleepPoor)
	case in.SleepQuality < 6:
		t.add("sleepQuality", m.SleepFair)
	}
	t.add("mentalHealthIssues", m.PerIssue*float64(len(in.MentalHealthIssues)))
	if in.MentalSupport != Yes {
		t.add("mentalSupport", m.NoSupport)
	}
	return t.sum, t.factors
}

func (s *Scorer) agePoints(age int) float64 {
	for _, band := range s.table.AgeBands {
		if age < band.Under {
			return band.Points
		}
	}
	return s.table.AgeOtherwise
}

func countConditions(conditions []string) int {
	n := 0
	for _, c := range conditions {
		if strings.EqualFold(strings.TrimSpace(c), noneCondition) {
			continue
		}
		n++
	}
	return n
}
