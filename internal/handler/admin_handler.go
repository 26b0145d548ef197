package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MHK-404/Wellsure-backend/internal/storage"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ListAssessments godoc
// @Summary      평가 기록 목록 조회
// @Description  저장된 평가 기록을 최신순으로 반환합니다.
// @Tags         Admin (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "최대 개수 (기본 50, 최대 500)"
// @Success      200 {object} handler.AssessmentsResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 limit"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패"
// @Router       /api/admin/assessments [get]
func (h *Handler) ListAssessments(c *gin.Context) {
	limit := defaultListLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := h.store.ListAssessments(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("failed to list assessments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch assessments"})
		return
	}
	c.JSON(http.StatusOK, AssessmentsResponse{Assessments: records})
}

// GetAssessment godoc
// @Summary      평가 기록 단건 조회
// @Tags         Admin (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "평가 ID (UUID)"
// @Success      200 {object} models.AssessmentRecord
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      404 {object} handler.ErrorResponse "기록 없음"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패"
// @Router       /api/admin/assessments/{id} [get]
func (h *Handler) GetAssessment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Assessment not found"})
		return
	}

	rec, err := h.store.GetAssessment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Assessment not found"})
			return
		}
		h.log.Error("failed to get assessment", zap.String("assessment_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch assessment"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Stats godoc
// @Summary      위험 등급별 평가 건수
// @Tags         Admin (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.StatsResponse
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패"
// @Router       /api/admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	counts, err := h.store.CountByCategory(c.Request.Context())
	if err != nil {
		h.log.Error("failed to count assessments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch stats"})
		return
	}
	total := 0
	for _, cnt := range counts {
		total += cnt.Count
	}
	c.JSON(http.StatusOK, StatsResponse{Total: total, Categories: counts})
}
