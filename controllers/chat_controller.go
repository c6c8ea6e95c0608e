package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stepbuddy_server/middleware"
	"stepbuddy_server/services"

	"go.uber.org/zap"
)

// ChatController handles conversation requests
type ChatController struct {
	ChatService *services.ChatService
	Logger      *zap.Logger
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService, logger *zap.Logger) *ChatController {
	return &ChatController{ChatService: chatService, Logger: logger}
}

// GetMessages returns up to 50 recent messages of a conversation in
// chronological order
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		http.Error(w, `{"error": "conversationId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = services.MessagePageSize
	}

	messages, err := c.ChatService.GetMessages(r.Context(), conversationID, int32(limit))
	if err != nil {
		c.Logger.Error("failed to fetch messages", zap.String("conversationId", conversationID), zap.Error(err))
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"messages": messages,
	})
}

// SendMessage persists a message from the caller and forwards it to the
// recipient when connected
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var request struct {
		ToUserID       string `json:"toUserId"`
		Content        string `json:"content"`
		ConversationID string `json:"conversationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.ToUserID == "" || request.Content == "" {
		http.Error(w, `{"error": "Missing required fields: toUserId or content"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), callerID, request.ToUserID, request.Content, request.ConversationID)
	if err != nil {
		c.Logger.Error("failed to send message",
			zap.String("fromUserId", callerID),
			zap.String("toUserId", request.ToUserID),
			zap.Error(err))
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": message,
	})
}
