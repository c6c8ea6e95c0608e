package services

import (
	"math"

	"stepbuddy_server/models"
)

// Scoring weights for walking compatibility. The step-goal term decays by a
// point per 500 steps of difference and floors at zero; the total is capped
// at 100.
const (
	stepGoalMaxPoints  = 40
	stepGoalDecayPer   = 500
	paceExactPoints    = 30
	paceAdjacentPoints = 15
	slotOverlapPoints  = 10
	sameLocationPoints = 20
	compatibilityCeil  = 100
)

// CompatibilityScore computes the walking-compatibility score between two
// profiles. Deterministic and symmetric: every term reads both sides the
// same way.
func CompatibilityScore(a, b *models.UserProfile) float64 {
	score := math.Max(0, stepGoalMaxPoints-math.Abs(float64(a.StepGoal-b.StepGoal))/stepGoalDecayPer)

	if a.Pace == b.Pace {
		score += paceExactPoints
	} else if (a.Pace == models.PaceModerate && (b.Pace == models.PaceSlow || b.Pace == models.PaceBrisk)) ||
		(b.Pace == models.PaceModerate && (a.Pace == models.PaceSlow || a.Pace == models.PaceBrisk)) {
		score += paceAdjacentPoints
	}

	score += slotOverlapPoints * float64(availabilityOverlap(a.Availability, b.Availability))

	if a.Location == b.Location {
		score += sameLocationPoints
	}

	return math.Min(compatibilityCeil, score)
}

// availabilityOverlap counts the shared time slots. Availability values are
// sets of the three slot enums, so duplicates cannot inflate the count.
func availabilityOverlap(a, b []string) int {
	slots := make(map[string]struct{}, len(a))
	for _, slot := range a {
		slots[slot] = struct{}{}
	}

	overlap := 0
	for _, slot := range b {
		if _, ok := slots[slot]; ok {
			overlap++
			delete(slots, slot)
		}
	}
	return overlap
}
