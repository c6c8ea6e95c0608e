package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"stepbuddy_server/middleware"
	"stepbuddy_server/services"
	"stepbuddy_server/store"

	"go.uber.org/zap"
)

// DiscoveryController handles candidate-feed requests
type DiscoveryController struct {
	DiscoveryService *services.DiscoveryService
	Logger           *zap.Logger
}

// NewDiscoveryController creates a new DiscoveryController instance
func NewDiscoveryController(discoveryService *services.DiscoveryService, logger *zap.Logger) *DiscoveryController {
	return &DiscoveryController{DiscoveryService: discoveryService, Logger: logger}
}

// GetCandidates returns the caller's ranked candidate list
func (c *DiscoveryController) GetCandidates(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	candidates, err := c.DiscoveryService.GetCandidates(r.Context(), callerID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		c.Logger.Error("failed to fetch candidates", zap.String("userId", callerID), zap.Error(err))
		http.Error(w, `{"error": "Failed to fetch candidates"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"candidates": candidates,
	})
}
