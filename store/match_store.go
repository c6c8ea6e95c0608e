package store

import (
	"context"
	"fmt"

	"stepbuddy_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchStore persists match records keyed by the deterministic pair ID.
// Put overwrites: concurrent resolution of the same pair converges on one
// record instead of racing.
type MatchStore interface {
	Put(ctx context.Context, match models.Match) error
	ListByUserA(ctx context.Context, userID string) ([]models.Match, error)
	ListByUserB(ctx context.Context, userID string) ([]models.Match, error)
}

// DynamoMatchStore implements MatchStore on the Matches table and its
// UserAIndex/UserBIndex GSIs
type DynamoMatchStore struct {
	Dynamo *DynamoClient
}

func (s *DynamoMatchStore) Put(ctx context.Context, match models.Match) error {
	return s.Dynamo.PutItem(ctx, models.MatchesTable, match)
}

func (s *DynamoMatchStore) ListByUserA(ctx context.Context, userID string) ([]models.Match, error) {
	return s.listByIndex(ctx, models.MatchUserAIndex, "userA = :userId", userID)
}

func (s *DynamoMatchStore) ListByUserB(ctx context.Context, userID string) ([]models.Match, error) {
	return s.listByIndex(ctx, models.MatchUserBIndex, "userB = :userId", userID)
}

func (s *DynamoMatchStore) listByIndex(ctx context.Context, index, keyCondition, userID string) ([]models.Match, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, index, keyCondition,
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, 0)
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return matches, nil
}
