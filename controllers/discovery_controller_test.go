package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stepbuddy_server/middleware"
	"stepbuddy_server/models"
	"stepbuddy_server/services"
	"stepbuddy_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetCandidatesWithoutProfileIsNotFound(t *testing.T) {
	svc := &services.DiscoveryService{
		Profiles: store.NewMemoryProfileStore(),
		Swipes:   store.NewMemorySwipeStore(),
		Logger:   zap.NewNop(),
	}
	handler := NewDiscoveryController(svc, zap.NewNop()).GetCandidates

	req := httptest.NewRequest("GET", "/api/discover", nil)
	req = req.WithContext(middleware.WithCallerID(req.Context(), "u1"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCandidatesReturnsRankedList(t *testing.T) {
	profiles := store.NewMemoryProfileStore()
	ctx := context.Background()
	require.NoError(t, profiles.Put(ctx, models.UserProfile{UserID: "u1", StepGoal: 10000, Pace: models.PaceModerate, Location: "X"}))
	require.NoError(t, profiles.Put(ctx, models.UserProfile{UserID: "u2", StepGoal: 10500, Pace: models.PaceModerate, Location: "X"}))

	svc := &services.DiscoveryService{
		Profiles: profiles,
		Swipes:   store.NewMemorySwipeStore(),
		Logger:   zap.NewNop(),
	}
	handler := NewDiscoveryController(svc, zap.NewNop()).GetCandidates

	req := httptest.NewRequest("GET", "/api/discover", nil)
	req = req.WithContext(middleware.WithCallerID(req.Context(), "u1"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Candidates []models.CandidateProfile `json:"candidates"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.Candidates, 1)
	assert.Equal(t, "u2", response.Candidates[0].UserID)
	assert.Greater(t, response.Candidates[0].CompatibilityScore, 0.0)
}
