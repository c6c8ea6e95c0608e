package services

import (
	"context"
	"fmt"
	"testing"

	"stepbuddy_server/models"
	"stepbuddy_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDiscoveryFixture() (*DiscoveryService, *store.MemoryProfileStore, *store.MemorySwipeStore) {
	profiles := store.NewMemoryProfileStore()
	swipes := store.NewMemorySwipeStore()
	svc := &DiscoveryService{Profiles: profiles, Swipes: swipes, Logger: zap.NewNop()}
	return svc, profiles, swipes
}

func seedProfile(t *testing.T, profiles *store.MemoryProfileStore, userID string, stepGoal int) {
	t.Helper()
	err := profiles.Put(context.Background(), models.UserProfile{
		UserID:       userID,
		StepGoal:     stepGoal,
		Pace:         models.PaceModerate,
		Availability: []string{models.SlotMorning},
		Location:     "riverside",
	})
	require.NoError(t, err)
}

func TestGetCandidatesFailsWithoutOwnProfile(t *testing.T) {
	svc, profiles, _ := newDiscoveryFixture()
	seedProfile(t, profiles, "u2", 10000)

	_, err := svc.GetCandidates(context.Background(), "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetCandidatesExcludesSelfAndSwiped(t *testing.T) {
	svc, profiles, swipes := newDiscoveryFixture()
	ctx := context.Background()

	seedProfile(t, profiles, "me", 10000)
	seedProfile(t, profiles, "liked", 10000)
	seedProfile(t, profiles, "passed", 10000)
	seedProfile(t, profiles, "fresh", 10000)

	require.NoError(t, swipes.Put(ctx, models.Swipe{UserID: "me", TargetUserID: "liked", Direction: models.DirectionRight}))
	require.NoError(t, swipes.Put(ctx, models.Swipe{UserID: "me", TargetUserID: "passed", Direction: models.DirectionLeft}))

	candidates, err := svc.GetCandidates(ctx, "me")
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "fresh", candidates[0].UserID)
}

func TestGetCandidatesRankedDescendingAndCapped(t *testing.T) {
	svc, profiles, _ := newDiscoveryFixture()
	ctx := context.Background()

	seedProfile(t, profiles, "me", 10000)
	// Step goals fan out so every candidate scores differently
	for i := 0; i < 30; i++ {
		seedProfile(t, profiles, fmt.Sprintf("c%02d", i), 10000+i*600)
	}

	candidates, err := svc.GetCandidates(ctx, "me")
	require.NoError(t, err)

	require.Len(t, candidates, MaxCandidates)
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].CompatibilityScore, candidates[i].CompatibilityScore)
	}
	// Closest step goal ranks first
	assert.Equal(t, "c00", candidates[0].UserID)
}

func TestGetCandidatesAnnotatesScores(t *testing.T) {
	svc, profiles, _ := newDiscoveryFixture()
	ctx := context.Background()

	seedProfile(t, profiles, "me", 10000)
	seedProfile(t, profiles, "other", 10500)

	candidates, err := svc.GetCandidates(ctx, "me")
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	me, err := profiles.Get(ctx, "me")
	require.NoError(t, err)
	other, err := profiles.Get(ctx, "other")
	require.NoError(t, err)
	assert.InDelta(t, CompatibilityScore(me, other), candidates[0].CompatibilityScore, 1e-9)
}

func TestGetCandidatesEmptyPool(t *testing.T) {
	svc, profiles, _ := newDiscoveryFixture()
	ctx := context.Background()

	seedProfile(t, profiles, "me", 10000)

	candidates, err := svc.GetCandidates(ctx, "me")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
