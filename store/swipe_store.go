package store

import (
	"context"
	"fmt"

	"stepbuddy_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SwipeStore persists directional swipe decisions keyed by
// (userId, targetUserId). Put is an upsert: the composite key makes a repeat
// swipe on the same target overwrite the earlier decision.
type SwipeStore interface {
	Put(ctx context.Context, swipe models.Swipe) error
	Get(ctx context.Context, userID, targetUserID string) (*models.Swipe, error)
	ListByUser(ctx context.Context, userID string) ([]models.Swipe, error)
}

// DynamoSwipeStore implements SwipeStore on the Swipes table
type DynamoSwipeStore struct {
	Dynamo *DynamoClient
}

func (s *DynamoSwipeStore) Put(ctx context.Context, swipe models.Swipe) error {
	return s.Dynamo.PutItem(ctx, models.SwipesTable, swipe)
}

func (s *DynamoSwipeStore) Get(ctx context.Context, userID, targetUserID string) (*models.Swipe, error) {
	key := map[string]types.AttributeValue{
		"userId":       &types.AttributeValueMemberS{Value: userID},
		"targetUserId": &types.AttributeValueMemberS{Value: targetUserID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.SwipesTable, key)
	if err != nil {
		return nil, err
	}

	var swipe models.Swipe
	if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	return &swipe, nil
}

func (s *DynamoSwipeStore) ListByUser(ctx context.Context, userID string) ([]models.Swipe, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.SwipesTable, "userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, 0)
	if err != nil {
		return nil, err
	}

	var swipes []models.Swipe
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipes: %w", err)
	}
	return swipes, nil
}
