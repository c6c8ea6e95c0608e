package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"stepbuddy_server/models"
	"stepbuddy_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePush struct {
	delivered []models.Message
	err       error
}

func (f *fakePush) DeliverToUser(userID, event string, payload interface{}) error {
	if f.err != nil {
		return f.err
	}
	if message, ok := payload.(models.Message); ok {
		f.delivered = append(f.delivered, message)
	}
	return nil
}

func newChatFixture(push PushChannel) (*ChatService, *store.MemoryMessageStore) {
	messages := store.NewMemoryMessageStore()
	svc := &ChatService{Messages: messages, Push: push, Logger: zap.NewNop()}
	return svc, messages
}

func TestSendMessageDerivesSymmetricConversationID(t *testing.T) {
	svc, _ := newChatFixture(nil)
	ctx := context.Background()

	fromA, err := svc.SendMessage(ctx, "amy", "zoe", "morning walk?", "")
	require.NoError(t, err)
	fromB, err := svc.SendMessage(ctx, "zoe", "amy", "yes!", "")
	require.NoError(t, err)

	assert.Equal(t, "amy-zoe", fromA.ConversationID)
	assert.Equal(t, fromA.ConversationID, fromB.ConversationID)
}

func TestSendMessagePersistsAndStamps(t *testing.T) {
	svc, messages := newChatFixture(nil)
	ctx := context.Background()

	sent, err := svc.SendMessage(ctx, "amy", "zoe", "hello", "")
	require.NoError(t, err)

	assert.NotEmpty(t, sent.MessageID)
	assert.NotEmpty(t, sent.Timestamp)
	assert.Equal(t, "amy", sent.FromUserID)
	assert.Equal(t, "zoe", sent.ToUserID)

	stored, err := messages.ListByConversation(ctx, "amy-zoe", 0, false)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, *sent, stored[0])
}

func TestSendMessageDeliversToRecipient(t *testing.T) {
	push := &fakePush{}
	svc, _ := newChatFixture(push)

	sent, err := svc.SendMessage(context.Background(), "amy", "zoe", "hello", "")
	require.NoError(t, err)

	require.Len(t, push.delivered, 1)
	assert.Equal(t, *sent, push.delivered[0])
}

func TestSendMessageSurvivesPushFailure(t *testing.T) {
	push := &fakePush{err: errors.New("recipient offline")}
	svc, messages := newChatFixture(push)
	ctx := context.Background()

	sent, err := svc.SendMessage(ctx, "amy", "zoe", "hello", "")
	require.NoError(t, err)
	require.NotNil(t, sent)

	stored, err := messages.ListByConversation(ctx, "amy-zoe", 0, false)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestGetMessagesReturnsLatestPageAscending(t *testing.T) {
	svc, messages := newChatFixture(nil)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		require.NoError(t, messages.Put(ctx, models.Message{
			ConversationID: "amy-zoe",
			Timestamp:      base.Add(time.Duration(i) * time.Minute).Format(messageTimestampLayout),
			FromUserID:     "amy",
			ToUserID:       "zoe",
			Content:        fmt.Sprintf("msg %02d", i),
			MessageID:      fmt.Sprintf("m%02d", i),
		}))
	}

	page, err := svc.GetMessages(ctx, "amy-zoe", 0)
	require.NoError(t, err)

	// The 50 most recent messages, oldest-to-newest
	require.Len(t, page, MessagePageSize)
	assert.Equal(t, "m10", page[0].MessageID)
	assert.Equal(t, "m59", page[len(page)-1].MessageID)
	for i := 1; i < len(page); i++ {
		assert.Less(t, page[i-1].Timestamp, page[i].Timestamp)
	}
}

func TestMessageTimestampsSortLexicographically(t *testing.T) {
	// A whole-second timestamp must still compare below a fractional one
	// later in the same second; the sort key is compared as a string.
	wholeSecond := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	fractional := wholeSecond.Add(500 * time.Millisecond)

	earlier := wholeSecond.Format(messageTimestampLayout)
	later := fractional.Format(messageTimestampLayout)

	assert.Len(t, later, len(earlier))
	assert.Less(t, earlier, later)

	parsed, err := time.Parse(messageTimestampLayout, earlier)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(wholeSecond))
}

func TestSendMessageStampsFixedWidthTimestamp(t *testing.T) {
	svc, _ := newChatFixture(nil)

	sent, err := svc.SendMessage(context.Background(), "amy", "zoe", "hello", "")
	require.NoError(t, err)

	_, err = time.Parse(messageTimestampLayout, sent.Timestamp)
	require.NoError(t, err)
	assert.Len(t, sent.Timestamp, len("2026-08-01T09:00:00.000000000Z"))
}

func TestGetMessagesEmptyConversation(t *testing.T) {
	svc, _ := newChatFixture(nil)

	page, err := svc.GetMessages(context.Background(), "nobody-noone", 0)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}
