package models

// 설문에서 정규화된 평가 입력
type AssessmentInput struct {
	Age                 int      `json:"age" yaml:"age"`
	Gender              string   `json:"gender,omitempty" yaml:"gender,omitempty"`
	Smoke               string   `json:"smoke" yaml:"smoke"`
	Alcohol             string   `json:"alcohol" yaml:"alcohol"`
	Exercise            string   `json:"exercise,omitempty" yaml:"exercise,omitempty"`
	Conditions          []string `json:"conditions" yaml:"conditions"`
	Stress              int      `json:"stress" yaml:"stress"`
	MentalWellbeing     int      `json:"mentalWellbeing" yaml:"mentalWellbeing"`
	Anxiety             int      `json:"anxiety" yaml:"anxiety"`
	SleepQuality        int      `json:"sleepQuality" yaml:"sleepQuality"`
	MentalHealthIssues  []string `json:"mentalHealthIssues" yaml:"mentalHealthIssues"`
	MentalSupport       string   `json:"mentalSupport" yaml:"mentalSupport"`
	RelaxationFrequency string   `json:"relaxationFrequency,omitempty" yaml:"relaxationFrequency,omitempty"`
	ScreenTime          string   `json:"screenTime,omitempty" yaml:"screenTime,omitempty"`
	SocialConnection    *int     `json:"socialConnection,omitempty" yaml:"socialConnection,omitempty"`
}

// 점수에 기여한 개별 요인
type Factor struct {
	Name   string  `json:"name" example:"smoking"`
	Points float64 `json:"points" example:"3"`
}

type RiskResult struct {
	Score             float64  `json:"score" example:"10"`
	MentalHealthScore float64  `json:"mentalHealthScore" example:"3"`
	RiskCategory      string   `json:"riskCategory" example:"Low Risk"`
	Recommendations   []string `json:"recommendations"`
	Factors           []Factor `json:"factors"`
	TableVersion      string   `json:"tableVersion" example:"v1"`
}
