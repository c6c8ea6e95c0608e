package controllers

import (
	"encoding/json"
	"net/http"

	"stepbuddy_server/middleware"
	"stepbuddy_server/models"
	"stepbuddy_server/services"

	"go.uber.org/zap"
)

// SwipeController handles swipe submissions
type SwipeController struct {
	SwipeService *services.SwipeService
	Logger       *zap.Logger
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService, logger *zap.Logger) *SwipeController {
	return &SwipeController{SwipeService: swipeService, Logger: logger}
}

// RecordSwipe persists the caller's decision and reports whether it
// completed a match
func (c *SwipeController) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var request struct {
		TargetUserID string `json:"targetUserId"`
		Direction    string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.TargetUserID == "" || !models.ValidDirection(request.Direction) {
		http.Error(w, `{"error": "targetUserId and a direction of left or right are required"}`, http.StatusBadRequest)
		return
	}

	result, err := c.SwipeService.ResolveSwipe(r.Context(), callerID, request.TargetUserID, request.Direction)
	if err != nil {
		c.Logger.Error("failed to resolve swipe",
			zap.String("userId", callerID),
			zap.String("targetUserId", request.TargetUserID),
			zap.Error(err))
		http.Error(w, `{"error": "Failed to record swipe"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
