package services

import (
	"context"
	"fmt"
	"time"

	"stepbuddy_server/models"
	"stepbuddy_server/store"
	"stepbuddy_server/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessagePageSize caps a conversation page at the 50 most recent messages
const MessagePageSize = 50

// messageTimestampLayout is fixed-width so the Messages sort key orders
// lexicographically. RFC3339Nano drops trailing zeros, which would sort a
// whole-second timestamp after a fractional one in the same second.
const messageTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// PushChannel delivers an event to a connected user, best-effort. An offline
// recipient or a transport failure is not an error the caller acts on.
type PushChannel interface {
	DeliverToUser(userID, event string, payload interface{}) error
}

// ChatService persists conversation messages and forwards them to connected
// recipients
type ChatService struct {
	Messages store.MessageStore
	Push     PushChannel // optional
	Logger   *zap.Logger
}

// SendMessage persists a new message and pushes it to the recipient if one
// is connected. The conversation ID is derived from the sorted participant
// pair when not supplied, so both directions land in the same thread. A
// failed push never fails the persisted write.
func (cs *ChatService) SendMessage(ctx context.Context, fromUserID, toUserID, content, conversationID string) (*models.Message, error) {
	if conversationID == "" {
		conversationID = utils.PairID(fromUserID, toUserID)
	}

	now := time.Now().UTC()
	message := models.Message{
		ConversationID: conversationID,
		Timestamp:      now.Format(messageTimestampLayout),
		FromUserID:     fromUserID,
		ToUserID:       toUserID,
		Content:        content,
		MessageID:      newMessageID(now),
	}

	if err := cs.Messages.Put(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if cs.Push != nil {
		if err := cs.Push.DeliverToUser(toUserID, "newMessage", message); err != nil {
			cs.Logger.Debug("recipient not reachable",
				zap.String("toUserId", toUserID),
				zap.Error(err))
		}
	}

	return &message, nil
}

// GetMessages returns the most recent messages of a conversation in
// chronological order, capped at MessagePageSize.
func (cs *ChatService) GetMessages(ctx context.Context, conversationID string, limit int32) ([]models.Message, error) {
	if limit <= 0 || limit > MessagePageSize {
		limit = MessagePageSize
	}

	messages, err := cs.Messages.ListByConversation(ctx, conversationID, limit, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages for '%s': %w", conversationID, err)
	}

	// Query pages from the newest end; the client reads oldest-to-newest
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// newMessageID builds a millisecond timestamp plus random suffix. Collisions
// are negligible but not cryptographically excluded.
func newMessageID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
