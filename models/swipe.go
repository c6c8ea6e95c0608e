package models

// Swipe records a one-directional decision by one user about another.
// Keyed by (userId, targetUserId): a later swipe on the same target
// overwrites the earlier one.
type Swipe struct {
	UserID       string `dynamodbav:"userId" json:"userId"`             // ✅ Partition Key
	TargetUserID string `dynamodbav:"targetUserId" json:"targetUserId"` // ✅ Sort Key
	Direction    string `dynamodbav:"direction" json:"direction"`       // "left" or "right"
	SwipedAt     string `dynamodbav:"swipedAt" json:"swipedAt"`         // Timestamp of the decision
}

// SwipesTable is the DynamoDB table name for swipes
const SwipesTable = "Swipes"
