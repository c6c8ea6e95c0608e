package models

// UserProfile defines the structure for walker profiles
type UserProfile struct {
	UserID       string   `dynamodbav:"userId" json:"userId"`                           // ✅ Partition Key
	Name         string   `dynamodbav:"name,omitempty" json:"name,omitempty"`           // Display name
	StepGoal     int      `dynamodbav:"stepGoal" json:"stepGoal"`                       // Daily step goal
	Pace         string   `dynamodbav:"pace" json:"pace"`                               // "slow", "moderate" or "brisk"
	Availability []string `dynamodbav:"availability" json:"availability"`               // Time slots the user can walk
	Location     string   `dynamodbav:"location" json:"location"`                       // Locality token, exact-match only
	Bio          string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`             // Short biography
	PhotoURL     string   `dynamodbav:"photoUrl,omitempty" json:"photoUrl,omitempty"`   // Profile photo URL
	Badges       []string `dynamodbav:"badges,omitempty" json:"badges,omitempty"`       // Earned walking badges
	CreatedAt    string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"` // Timestamp of creation
	UpdatedAt    string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"` // Timestamp of last edit
}

// CandidateProfile is a profile annotated with its compatibility score for discovery results
type CandidateProfile struct {
	UserProfile
	CompatibilityScore float64 `json:"compatibilityScore"`
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "Profiles"
