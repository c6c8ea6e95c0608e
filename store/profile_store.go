package store

import (
	"context"
	"fmt"
	"sort"

	"stepbuddy_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileStore is the keyed profile access the matching core depends on.
// ScanAllExcept is deliberately the only candidate source: swapping the full
// scan for an indexed or paginated lookup later means replacing this
// implementation, not the scoring or ranking code.
type ProfileStore interface {
	Put(ctx context.Context, profile models.UserProfile) error
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error)
	ScanAllExcept(ctx context.Context, userID string) ([]models.UserProfile, error)
}

// DynamoProfileStore implements ProfileStore on the Profiles table
type DynamoProfileStore struct {
	Dynamo *DynamoClient
}

func (s *DynamoProfileStore) Put(ctx context.Context, profile models.UserProfile) error {
	return s.Dynamo.PutItem(ctx, models.ProfilesTable, profile)
}

func (s *DynamoProfileStore) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// Update applies a partial update and returns the stored profile
func (s *DynamoProfileStore) Update(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	// Deterministic expression order keeps retries byte-identical
	fields := make([]string, 0, len(updates))
	for k := range updates {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for i, k := range fields {
		av, err := attributevalue.Marshal(updates[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update for '%s': %w", k, err)
		}
		if i > 0 {
			updateExpression += ","
		}
		updateExpression += " #" + k + " = :" + k
		expressionAttributeValues[":"+k] = av
		expressionAttributeNames["#"+k] = k
	}

	// Refuse to materialize a profile that was never created
	updated, err := s.Dynamo.UpdateItem(ctx, models.ProfilesTable, updateExpression, "attribute_exists(userId)", key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(updated, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoProfileStore) ScanAllExcept(ctx context.Context, userID string) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := s.Dynamo.ScanExcluding(ctx, models.ProfilesTable, "userId", userID, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
