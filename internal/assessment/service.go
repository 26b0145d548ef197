package assessment

import (
	"github.com/MHK-404/Wellsure-backend/internal/models"
)

// Service runs validation, scoring and categorization for one request.
type Service struct {
	table     *Table
	validator *Validator
	scorer    *Scorer
}

func NewService(table *Table, validator *Validator) *Service {
	return &Service{
		table:     table,
		validator: validator,
		scorer:    NewScorer(table),
	}
}

func (s *Service) Table() *Table {
	return s.table
}

// Assess validates raw and scores it. Validation failures are *ValidationError;
// a panic during scoring is returned as *InternalError. The scorer never runs on invalid input.
func (s *Service) Assess(raw map[string]any) (result models.RiskResult, input models.AssessmentInput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, input, err = models.RiskResult{}, models.AssessmentInput{}, &InternalError{Cause: r}
		}
	}()

	input, err = s.validator.Validate(raw)
	if err != nil {
		return models.RiskResult{}, models.AssessmentInput{}, err
	}
	return s.Evaluate(input), input, nil
}

// Evaluate scores an already validated input.
func (s *Service) Evaluate(in models.AssessmentInput) models.RiskResult {
	b := s.scorer.Score(in)
	score := b.Total.InexactFloat64()
	category := s.table.Categorize(score)
	return models.RiskResult{
		Score:             score,
		MentalHealthScore: b.Mental.InexactFloat64(),
		RiskCategory:      category.Name,
		Recommendations:   category.Recommendations,
		Factors:           b.Factors,
		TableVersion:      s.table.Version,
	}
}
