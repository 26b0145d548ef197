package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
	"github.com/MHK-404/Wellsure-backend/internal/auth"
	"github.com/MHK-404/Wellsure-backend/internal/storage"
)

const testSecret = "handler-test-secret"

type testServer struct {
	router *gin.Engine
	store  *storage.Store
	signer *auth.Signer
}

func newTestServer(t *testing.T, withLedger bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := assessment.NewService(assessment.DefaultTable(), assessment.NewValidator())
	ts := &testServer{}
	if withLedger {
		store, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "ledger.db"))
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		ts.store = store

		signer, err := auth.NewSigner(testSecret)
		require.NoError(t, err)
		ts.signer = signer
	}

	h := New(svc, ts.store, zap.NewNop(), "test")
	ts.router = NewRouter(h, RouterConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		Signer:         ts.signer,
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) adminToken(t *testing.T) map[string]string {
	t.Helper()
	token, err := ts.signer.GenerateToken("tester", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
