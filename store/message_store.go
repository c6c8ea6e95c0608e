package store

import (
	"context"
	"fmt"

	"stepbuddy_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MessageStore is the append-only conversation log. ListByConversation
// returns at most limit messages ordered by timestamp; latestFirst selects
// descending order so callers can page from the newest end.
type MessageStore interface {
	Put(ctx context.Context, message models.Message) error
	ListByConversation(ctx context.Context, conversationID string, limit int32, latestFirst bool) ([]models.Message, error)
}

// DynamoMessageStore implements MessageStore on the Messages table
type DynamoMessageStore struct {
	Dynamo *DynamoClient
}

func (s *DynamoMessageStore) Put(ctx context.Context, message models.Message) error {
	return s.Dynamo.PutItem(ctx, models.MessagesTable, message)
}

func (s *DynamoMessageStore) ListByConversation(ctx context.Context, conversationID string, limit int32, latestFirst bool) ([]models.Message, error) {
	items, err := s.Dynamo.QueryItemsSorted(ctx, models.MessagesTable, "conversationId = :conversationId",
		map[string]types.AttributeValue{
			":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		}, limit, latestFirst)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	return messages, nil
}
