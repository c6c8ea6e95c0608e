package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"stepbuddy_server/middleware"
	"stepbuddy_server/models"
	"stepbuddy_server/services"
	"stepbuddy_server/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// UserProfileController handles requests related to walker profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
	Logger             *zap.Logger
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userProfileService *services.UserProfileService, logger *zap.Logger) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService, Logger: logger}
}

// CreateUserProfile stores the caller's own profile
func (c *UserProfileController) CreateUserProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	if profile.UserID == "" {
		profile.UserID = callerID
	}
	if profile.UserID != callerID {
		http.Error(w, `{"error": "Forbidden"}`, http.StatusForbidden)
		return
	}

	created, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		c.Logger.Error("failed to add profile", zap.String("userId", callerID), zap.Error(err))
		http.Error(w, `{"error": "Failed to add profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile added successfully",
		"profile": created,
	})
}

// GetUserProfile fetches a profile by user ID
func (c *UserProfileController) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		c.Logger.Error("failed to fetch profile", zap.String("userId", userID), zap.Error(err))
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdateUserProfile applies a partial update to the caller's own profile
func (c *UserProfileController) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID != callerID {
		http.Error(w, `{"error": "Forbidden"}`, http.StatusForbidden)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	delete(updates, "userId")

	updated, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, updates)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		c.Logger.Error("failed to update profile", zap.String("userId", userID), zap.Error(err))
		http.Error(w, `{"error": "Failed to update profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": updated,
	})
}
