package models

// Match materializes a mutual pair of right swipes. MatchID is derived from
// the sorted pair of user IDs, so concurrent creation converges on one record.
type Match struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`     // ✅ Partition Key, "<userA>-<userB>"
	UserA     string `dynamodbav:"userA" json:"userA"`         // Lower user ID of the pair
	UserB     string `dynamodbav:"userB" json:"userB"`         // Higher user ID of the pair
	MatchedAt string `dynamodbav:"matchedAt" json:"matchedAt"` // Timestamp of creation
}

// MatchWithProfile combines a Match with the counterparty's profile data
type MatchWithProfile struct {
	Match
	Profile *UserProfile `json:"profile,omitempty"` // Nil when the profile fetch failed
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// GSI names used to look up matches from either side of the pair
const (
	MatchUserAIndex = "UserAIndex"
	MatchUserBIndex = "UserBIndex"
)
