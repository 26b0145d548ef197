package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
	"github.com/MHK-404/Wellsure-backend/internal/models"
)

const AssessmentIDHeader = "X-Assessment-ID"

var errNotObject = errors.New("request body must be a JSON object")

// Assess godoc
// @Summary      건강 위험도 평가 (Assess)
// @Description  생활 습관과 정신 건강 설문을 받아 위험 점수, 위험 등급, 권장 사항을 반환합니다.
// @Description  `age`만 필수이며 나머지 필드는 기본값이 적용됩니다.
// @Tags         Assessment
// @Accept       json
// @Produce      json
// @Param        request body models.AssessmentInput true "설문 응답"
// @Success      200 {object} handler.AssessResponse
// @Failure      400 {object} handler.ErrorResponse "필수 필드 누락 또는 잘못된 나이"
// @Failure      429 {object} handler.ErrorResponse "요청 과다"
// @Failure      500 {object} handler.ErrorResponse "평가 실패"
// @Router       /api/assess [post]
func (h *Handler) Assess(c *gin.Context) {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Message: "Failed to read request body"})
		return
	}
	raw, err := decodeInput(rawData)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	result, input, err := h.service.Assess(raw)
	if err != nil {
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, newValidationResponse(verr))
			return
		}
		h.log.Error("assessment failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Assessment failed", Message: err.Error()})
		return
	}

	if h.store != nil {
		if id, ok := h.record(c.Request.Context(), result, input); ok {
			c.Header(AssessmentIDHeader, id)
		}
	}
	c.JSON(http.StatusOK, newAssessResponse(result))
}

// record writes the result to the ledger. Failures are logged, never returned to the caller.
func (h *Handler) record(ctx context.Context, result models.RiskResult, input models.AssessmentInput) (string, bool) {
	rec := models.AssessmentRecord{
		ID:           uuid.NewString(),
		Score:        result.Score,
		RiskCategory: result.RiskCategory,
		TableVersion: result.TableVersion,
		Input:        input,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.store.CreateAssessment(ctx, rec); err != nil {
		h.log.Error("failed to store assessment", zap.String("assessment_id", rec.ID), zap.Error(err))
		return "", false
	}
	return rec.ID, true
}

// decodeInput parses one JSON object, keeping numbers as json.Number.
func decodeInput(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNotObject
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errNotObject
		}
		return nil, err
	}
	if raw == nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("request body must contain a single JSON object")
	}
	return raw, nil
}
