package services

import (
	"context"
	"time"

	"stepbuddy_server/models"
	"stepbuddy_server/store"

	"go.uber.org/zap"
)

// UserProfileService manages walker profiles. Profiles are created at
// signup, mutated only by their owner and never deleted.
type UserProfileService struct {
	Profiles store.ProfileStore
	Logger   *zap.Logger
}

// AddUserProfile stores a new profile, stamping creation time
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := ups.Profiles.Put(ctx, profile); err != nil {
		return nil, err
	}
	ups.Logger.Info("profile created", zap.String("userId", profile.UserID))
	return &profile, nil
}

// GetUserProfile retrieves a profile by user ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return ups.Profiles.Get(ctx, userID)
}

// UpdateUserProfile applies a partial update and returns the stored profile
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	updates["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	return ups.Profiles.Update(ctx, userID, updates)
}
