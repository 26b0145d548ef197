package models

import "time"

// 저장된 평가 기록 (ledger)
type AssessmentRecord struct {
	ID           string          `json:"id"`
	Score        float64         `json:"score"`
	RiskCategory string          `json:"riskCategory"`
	TableVersion string          `json:"tableVersion"`
	Input        AssessmentInput `json:"input"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type CategoryCount struct {
	RiskCategory string `json:"riskCategory"`
	Count        int    `json:"count"`
}
