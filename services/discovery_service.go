package services

import (
	"context"
	"fmt"
	"sort"

	"stepbuddy_server/models"
	"stepbuddy_server/store"

	"go.uber.org/zap"
)

// MaxCandidates is the size of the ranked candidate page
const MaxCandidates = 20

// DiscoveryService assembles the ranked candidate list a user swipes on
type DiscoveryService struct {
	Profiles store.ProfileStore
	Swipes   store.SwipeStore
	Logger   *zap.Logger
}

// GetCandidates returns up to MaxCandidates profiles the user has not yet
// decided on, ranked by compatibility score (highest first). Fails with the
// store's not-found error when the requesting user has no profile.
func (ds *DiscoveryService) GetCandidates(ctx context.Context, userID string) ([]models.CandidateProfile, error) {
	me, err := ds.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for '%s': %w", userID, err)
	}

	swipes, err := ds.Swipes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipes for '%s': %w", userID, err)
	}

	// Both directions count as decided: a pass is as final as a like
	decided := make(map[string]struct{}, len(swipes))
	for _, swipe := range swipes {
		decided[swipe.TargetUserID] = struct{}{}
	}

	profiles, err := ds.Profiles.ScanAllExcept(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan candidate profiles: %w", err)
	}

	candidates := make([]models.CandidateProfile, 0, len(profiles))
	for i := range profiles {
		if _, seen := decided[profiles[i].UserID]; seen {
			continue
		}
		candidates = append(candidates, models.CandidateProfile{
			UserProfile:        profiles[i],
			CompatibilityScore: CompatibilityScore(me, &profiles[i]),
		})
	}

	// Stable sort: ties keep store enumeration order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CompatibilityScore > candidates[j].CompatibilityScore
	})

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	ds.Logger.Debug("candidates ranked",
		zap.String("userId", userID),
		zap.Int("pool", len(profiles)),
		zap.Int("returned", len(candidates)))
	return candidates, nil
}
