/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 의존성 및 응답 타입
* Workflow: 		위험도 평가, 헬스 체크, 관리자 기록 조회, 실시간 미리보기
 */
package handler

import (
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
	"github.com/MHK-404/Wellsure-backend/internal/models"
	"github.com/MHK-404/Wellsure-backend/internal/storage"
)

// Handler holds what the HTTP handlers share. store is nil when the ledger is disabled.
type Handler struct {
	service  *assessment.Service
	store    *storage.Store
	log      *zap.Logger
	version  string
	upgrader websocket.Upgrader
}

func New(service *assessment.Service, store *storage.Store, log *zap.Logger, version string) *Handler {
	return &Handler{
		service: service,
		store:   store,
		log:     log,
		version: version,
	}
}

// /api/assess 성공 응답
type AssessResponse struct {
	Success           bool            `json:"success" example:"true"`
	RiskCategory      string          `json:"riskCategory" example:"Low Risk"`
	Recommendations   []string        `json:"recommendations"`
	Score             float64         `json:"score" example:"10"`
	MentalHealthScore float64         `json:"mentalHealthScore" example:"3"`
	Factors           []models.Factor `json:"factors"`
	TableVersion      string          `json:"tableVersion" example:"v1"`
}

type ErrorResponse struct {
	Error         string   `json:"error" example:"Missing required fields"`
	MissingFields []string `json:"missingFields,omitempty"`
	Message       string   `json:"message,omitempty" example:"Required fields: age"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"Healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2026-01-01T00:00:00Z"`
}

// 관리자 기록 목록 응답 (Wrapper)
type AssessmentsResponse struct {
	Assessments []models.AssessmentRecord `json:"assessments"`
}

type StatsResponse struct {
	Total      int                    `json:"total"`
	Categories []models.CategoryCount `json:"categories"`
}

func newAssessResponse(r models.RiskResult) AssessResponse {
	return AssessResponse{
		Success:           true,
		RiskCategory:      r.RiskCategory,
		Recommendations:   r.Recommendations,
		Score:             r.Score,
		MentalHealthScore: r.MentalHealthScore,
		Factors:           r.Factors,
		TableVersion:      r.TableVersion,
	}
}

func newValidationResponse(verr *assessment.ValidationError) ErrorResponse {
	return ErrorResponse{
		Error:         verr.Code,
		MissingFields: verr.MissingFields,
		Message:       verr.Message,
	}
}
