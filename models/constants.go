package models

// ✅ Swipe directions
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// ✅ Walking paces
const (
	PaceSlow     = "slow"
	PaceModerate = "moderate"
	PaceBrisk    = "brisk"
)

// ✅ Availability time slots
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// ValidDirection reports whether d is a known swipe direction
func ValidDirection(d string) bool {
	return d == DirectionLeft || d == DirectionRight
}
