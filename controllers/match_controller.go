package controllers

import (
	"encoding/json"
	"net/http"

	"stepbuddy_server/middleware"
	"stepbuddy_server/services"

	"go.uber.org/zap"
)

// MatchController handles match-list requests
type MatchController struct {
	MatchService *services.MatchService
	Logger       *zap.Logger
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService, logger *zap.Logger) *MatchController {
	return &MatchController{MatchService: matchService, Logger: logger}
}

// GetUserMatches returns the caller's matches, newest first
func (c *MatchController) GetUserMatches(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	matches, err := c.MatchService.GetUserMatches(r.Context(), callerID)
	if err != nil {
		c.Logger.Error("failed to fetch matches", zap.String("userId", callerID), zap.Error(err))
		http.Error(w, `{"error": "Failed to fetch matches"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"matches": matches,
	})
}
