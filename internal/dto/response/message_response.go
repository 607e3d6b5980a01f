package response

import (
	"time"

	"github.com/go-demo/forum/internal/model"
)

// MessageResponse represents a message response
type MessageResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Body      string `json:"body"`
	RoomName  string `json:"room_name,omitempty"`
	TopicName string `json:"topic_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// NewMessageResponse creates a message response from model
func NewMessageResponse(m *model.MessageWithUser) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		RoomID:    m.RoomID,
		UserID:    m.UserID,
		Username:  m.Username,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// NewMessageWithRoomResponse creates a message response carrying room context
func NewMessageWithRoomResponse(m *model.MessageWithRoom) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		RoomID:    m.RoomID,
		UserID:    m.UserID,
		Username:  m.Username,
		Body:      m.Body,
		RoomName:  m.RoomName,
		TopicName: m.GetTopicName(),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// MessageListResponse represents a list of messages
type MessageListResponse struct {
	Messages []*MessageResponse `json:"messages"`
	HasMore  bool               `json:"has_more"`
}

// NewMessageListResponse creates a message list response
func NewMessageListResponse(messages []*model.MessageWithUser, hasMore bool) *MessageListResponse {
	messageResponses := make([]*MessageResponse, len(messages))
	for i, msg := range messages {
		messageResponses[i] = NewMessageResponse(msg)
	}

	return &MessageListResponse{
		Messages: messageResponses,
		HasMore:  hasMore,
	}
}
