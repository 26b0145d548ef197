package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHK-404/Wellsure-backend/internal/models"
)

func TestAdmin_RequiresToken(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/api/admin/assessments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header required", decodeBody[ErrorResponse](t, w).Error)

	w = ts.do(t, http.MethodGet, "/api/admin/assessments", "", map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodGet, "/api/admin/assessments", "", map[string]string{"Authorization": "Bearer abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decodeBody[ErrorResponse](t, w).Error)
}

func TestAdmin_ExpiredToken(t *testing.T) {
	ts := newTestServer(t, true)
	token, err := ts.signer.GenerateToken("tester", -time.Minute)
	require.NoError(t, err)

	w := ts.do(t, http.MethodGet, "/api/admin/stats", "", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has expired", decodeBody[ErrorResponse](t, w).Error)
}

func TestAdmin_NotMountedWithoutLedger(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodGet, "/api/admin/assessments", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_ListGetAndStats(t *testing.T) {
	ts := newTestServer(t, true)
	headers := ts.adminToken(t)

	var ids []string
	for _, body := range []string{lowRiskBody, `{"age": 20, "mentalSupport": "Yes", "mentalWellbeing": 8, "sleepQuality": 8}`} {
		w := ts.do(t, http.MethodPost, "/api/assess", body, nil)
		require.Equal(t, http.StatusOK, w.Code)
		ids = append(ids, w.Header().Get(AssessmentIDHeader))
	}

	w := ts.do(t, http.MethodGet, "/api/admin/assessments?limit=5", "", headers)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[AssessmentsResponse](t, w)
	require.Len(t, list.Assessments, 2)
	assert.Equal(t, ids[1], list.Assessments[0].ID)

	w = ts.do(t, http.MethodGet, "/api/admin/assessments/"+ids[0], "", headers)
	require.Equal(t, http.StatusOK, w.Code)
	rec := decodeBody[models.AssessmentRecord](t, w)
	assert.Equal(t, 10.0, rec.Score)

	w = ts.do(t, http.MethodGet, "/api/admin/stats", "", headers)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody[StatsResponse](t, w)
	assert.Equal(t, 2, stats.Total)
	assert.ElementsMatch(t, []models.CategoryCount{
		{RiskCategory: "Low Risk", Count: 1},
		{RiskCategory: "Very Low Risk", Count: 1},
	}, stats.Categories)
}

func TestAdmin_GetUnknownAssessment(t *testing.T) {
	ts := newTestServer(t, true)
	headers := ts.adminToken(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		w := ts.do(t, http.MethodGet, "/api/admin/assessments/"+id, "", headers)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
	}
}

func TestAdmin_InvalidLimit(t *testing.T) {
	ts := newTestServer(t, true)
	headers := ts.adminToken(t)

	for _, limit := range []string{"0", "-1", "ten"} {
		w := ts.do(t, http.MethodGet, "/api/admin/assessments?limit="+limit, "", headers)
		assert.Equal(t, http.StatusBadRequest, w.Code, limit)
	}
}
