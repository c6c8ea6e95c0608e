package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stepbuddy_server/middleware"
	"stepbuddy_server/models"
	"stepbuddy_server/services"
	"stepbuddy_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSwipeHandler() http.HandlerFunc {
	svc := &services.SwipeService{
		Swipes:  store.NewMemorySwipeStore(),
		Matches: store.NewMemoryMatchStore(),
		Logger:  zap.NewNop(),
	}
	return NewSwipeController(svc, zap.NewNop()).RecordSwipe
}

func postSwipe(t *testing.T, handler http.HandlerFunc, callerID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/swipes", strings.NewReader(body))
	req = req.WithContext(middleware.WithCallerID(req.Context(), callerID))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRecordSwipeRejectsInvalidDirection(t *testing.T) {
	handler := newSwipeHandler()

	rec := postSwipe(t, handler, "u1", `{"targetUserId": "u2", "direction": "up"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordSwipeRejectsMissingTarget(t *testing.T) {
	handler := newSwipeHandler()

	rec := postSwipe(t, handler, "u1", `{"direction": "right"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordSwipeMutualRightReportsMatch(t *testing.T) {
	handler := newSwipeHandler()

	rec := postSwipe(t, handler, "u2", `{"targetUserId": "u1", "direction": "right"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var first services.SwipeResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&first))
	assert.False(t, first.Matched)

	rec = postSwipe(t, handler, "u1", `{"targetUserId": "u2", "direction": "right"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var second services.SwipeResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&second))
	require.True(t, second.Matched)
	assert.Equal(t, "u1-u2", second.MatchID)
}

func TestRecordSwipeLeftReportsNoMatch(t *testing.T) {
	handler := newSwipeHandler()

	rec := postSwipe(t, handler, "u1", `{"targetUserId": "u2", "direction": "`+models.DirectionLeft+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.SwipeResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.False(t, result.Matched)
}
