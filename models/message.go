package models

// Message is a single chat message within a conversation. Conversation
// identity is the sorted pair of the two participants, so messages between
// A and B land in one thread regardless of direction.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // ✅ Partition Key
	Timestamp      string `dynamodbav:"timestamp" json:"timestamp"`           // ✅ Sort Key
	FromUserID     string `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID       string `dynamodbav:"toUserId" json:"toUserId"`
	Content        string `dynamodbav:"content" json:"content"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
