package services

import (
	"context"
	"fmt"
	"sort"

	"stepbuddy_server/models"
	"stepbuddy_server/store"

	"go.uber.org/zap"
)

// MatchService assembles a user's match list with the counterparty profiles
type MatchService struct {
	Matches  store.MatchStore
	Profiles store.ProfileStore
	Logger   *zap.Logger
}

// GetUserMatches returns the user's matches, newest first, each with the
// other party's profile attached. A failed profile fetch degrades that entry
// (nil profile) instead of blanking the whole list.
func (ms *MatchService) GetUserMatches(ctx context.Context, userID string) ([]models.MatchWithProfile, error) {
	asA, err := ms.Matches.ListByUserA(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for '%s': %w", userID, err)
	}
	asB, err := ms.Matches.ListByUserB(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for '%s': %w", userID, err)
	}

	all := append(asA, asB...)

	// RFC3339 timestamps order lexicographically
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].MatchedAt > all[j].MatchedAt
	})

	enriched := make([]models.MatchWithProfile, 0, len(all))
	for _, match := range all {
		other := match.UserA
		if other == userID {
			other = match.UserB
		}

		profile, err := ms.Profiles.Get(ctx, other)
		if err != nil {
			ms.Logger.Warn("counterparty profile unavailable",
				zap.String("matchId", match.MatchID),
				zap.String("userId", other),
				zap.Error(err))
			profile = nil
		}

		enriched = append(enriched, models.MatchWithProfile{Match: match, Profile: profile})
	}

	return enriched, nil
}
