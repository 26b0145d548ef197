package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
)

// 미리보기 메시지 최대 크기
const maxPreviewMessageBytes = 64 << 10

type previewResult struct {
	Type string `json:"type"`
	AssessResponse
}

type previewError struct {
	Type string `json:"type"`
	ErrorResponse
}

// AssessPreview godoc
// @Summary      실시간 위험도 미리보기 WebSocket
// @Description  폼 작성 중 입력값을 보내면 즉시 점수와 등급을 돌려줍니다. 결과는 저장되지 않습니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.** `ws://` 또는 `wss://` 스킴으로 연결하세요.
// @Description  각 텍스트 프레임은 `/api/assess`와 같은 JSON 입력이며, 응답의 `type`은 `result` 또는 `error`입니다.
// @Tags         WebSocket (Preview)
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      403 {object} handler.ErrorResponse "허용되지 않은 Origin"
// @Router       /ws/assess [get]
func (h *Handler) AssessPreview(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Info("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxPreviewMessageBytes)

	requestID := c.GetString("request_id")
	h.log.Debug("preview session started", zap.String("request_id", requestID))

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Info("preview session read failed", zap.String("request_id", requestID), zap.Error(err))
			}
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := conn.WriteJSON(h.preview(message)); err != nil {
			h.log.Info("preview session write failed", zap.String("request_id", requestID), zap.Error(err))
			break
		}
	}
	h.log.Debug("preview session ended", zap.String("request_id", requestID))
}

func (h *Handler) preview(message []byte) any {
	raw, err := decodeInput(message)
	if err != nil {
		return previewError{Type: "error", ErrorResponse: ErrorResponse{Error: "Invalid request", Message: err.Error()}}
	}
	result, _, err := h.service.Assess(raw)
	if err != nil {
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			return previewError{Type: "error", ErrorResponse: newValidationResponse(verr)}
		}
		h.log.Error("preview assessment failed", zap.Error(err))
		return previewError{Type: "error", ErrorResponse: ErrorResponse{Error: "Assessment failed", Message: err.Error()}}
	}
	return previewResult{Type: "result", AssessResponse: newAssessResponse(result)}
}

// originChecker allows requests without an Origin header (non-browser clients).
func originChecker(allowAll bool, origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return allowAll || origin == "" || allowed[origin]
	}
}
