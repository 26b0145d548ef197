package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      헬스 체크 (Health)
// @Description  서비스 생존 여부를 확인합니다.
// @Tags         Health
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "Healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
