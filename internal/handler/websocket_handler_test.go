package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type previewMessage struct {
	Type          string   `json:"type"`
	RiskCategory  string   `json:"riskCategory"`
	Score         float64  `json:"score"`
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields"`
}

func dialPreview(t *testing.T, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	ts := newTestServer(t, true)
	server := httptest.NewServer(ts.router)
	t.Cleanup(server.Close)

	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/assess"
	return websocket.DefaultDialer.Dial(url, header)
}

func TestAssessPreview_ResultsAndErrors(t *testing.T) {
	conn, _, err := dialPreview(t, "http://localhost:3000")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(lowRiskBody)))
	var msg previewMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "result", msg.Type)
	assert.Equal(t, 10.0, msg.Score)
	assert.Equal(t, "Low Risk", msg.RiskCategory)

	// 바이너리 프레임은 무시
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x01}))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"stress": 4}`)))
	msg = previewMessage{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "Missing required fields", msg.Error)
	assert.Equal(t, []string{"age"}, msg.MissingFields)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	msg = previewMessage{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "Invalid request", msg.Error)
}

func TestAssessPreview_RejectsForeignOrigin(t *testing.T) {
	_, resp, err := dialPreview(t, "https://evil.example")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
