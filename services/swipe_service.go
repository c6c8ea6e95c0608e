package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stepbuddy_server/models"
	"stepbuddy_server/store"
	"stepbuddy_server/utils"

	"go.uber.org/zap"
)

// SwipeService records swipe decisions and resolves mutual right swipes
// into matches
type SwipeService struct {
	Swipes  store.SwipeStore
	Matches store.MatchStore
	Logger  *zap.Logger
}

// SwipeResult reports whether a swipe completed a match
type SwipeResult struct {
	Matched bool   `json:"matched"`
	MatchID string `json:"matchId,omitempty"`
}

// RecordSwipe persists a single directional decision. The (userId,
// targetUserId) key makes a repeat swipe an overwrite, and the target is not
// validated: an orphan swipe is tolerated.
func (ss *SwipeService) RecordSwipe(ctx context.Context, userID, targetUserID, direction string) error {
	swipe := models.Swipe{
		UserID:       userID,
		TargetUserID: targetUserID,
		Direction:    direction,
		SwipedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.Swipes.Put(ctx, swipe); err != nil {
		return fmt.Errorf("failed to record swipe %s -> %s: %w", userID, targetUserID, err)
	}
	return nil
}

// ResolveSwipe persists the swipe and, for a right swipe, checks whether the
// target has already swiped right back. On reciprocity the match is written
// under the deterministic pair ID: if both users resolve at the same instant,
// both writes converge on the same record and both callers see matched=true.
// That key derivation is the only concurrency control this path needs.
func (ss *SwipeService) ResolveSwipe(ctx context.Context, userID, targetUserID, direction string) (*SwipeResult, error) {
	if err := ss.RecordSwipe(ctx, userID, targetUserID, direction); err != nil {
		return nil, err
	}

	if direction != models.DirectionRight {
		return &SwipeResult{Matched: false}, nil
	}

	reciprocal, err := ss.Swipes.Get(ctx, targetUserID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return &SwipeResult{Matched: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check reciprocal swipe: %w", err)
	}
	if reciprocal.Direction != models.DirectionRight {
		return &SwipeResult{Matched: false}, nil
	}

	userA, userB := utils.SortPair(userID, targetUserID)
	match := models.Match{
		MatchID:   utils.PairID(userID, targetUserID),
		UserA:     userA,
		UserB:     userB,
		MatchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.Matches.Put(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match '%s': %w", match.MatchID, err)
	}

	ss.Logger.Info("match created",
		zap.String("matchId", match.MatchID),
		zap.String("userA", userA),
		zap.String("userB", userB))
	return &SwipeResult{Matched: true, MatchID: match.MatchID}, nil
}
