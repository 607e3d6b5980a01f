package ws

import (
	"encoding/json"
	"time"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	// Client -> Server messages
	MessageTypeJoinRoom    MessageType = "join_room"
	MessageTypeLeaveRoom   MessageType = "leave_room"
	MessageTypeSendMessage MessageType = "send_message"
	MessageTypePing        MessageType = "ping"

	// Server -> Client messages
	MessageTypeRoomJoined MessageType = "room_joined"
	MessageTypeRoomLeft   MessageType = "room_left"
	MessageTypeNewMessage MessageType = "new_message"
	MessageTypePong       MessageType = "pong"
	MessageTypeError      MessageType = "error"
	MessageTypeAck        MessageType = "ack"
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"request_id,omitempty"`
}

// JoinRoomPayload represents join room payload
type JoinRoomPayload struct {
	RoomID string `json:"room_id"`
}

// LeaveRoomPayload represents leave room payload
type LeaveRoomPayload struct {
	RoomID string `json:"room_id"`
}

// SendMessagePayload represents send message payload
type SendMessagePayload struct {
	RoomID string `json:"room_id"`
	Body   string `json:"body"`
}

// RoomJoinedPayload represents room joined response
type RoomJoinedPayload struct {
	RoomID           string `json:"room_id"`
	RoomName         string `json:"room_name"`
	TopicName        string `json:"topic_name,omitempty"`
	ParticipantCount int    `json:"participant_count"`
}

// NewMessagePayload represents new message broadcast
type NewMessagePayload struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// ErrorPayload represents error message
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AckPayload represents acknowledgement
type AckPayload struct {
	RequestID string `json:"request_id"`
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
}

// NewMessage creates a new message
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now(),
	}, nil
}

// NewErrorMessage creates a new error message
func NewErrorMessage(code int, message string) (*Message, error) {
	return NewMessage(MessageTypeError, &ErrorPayload{
		Code:    code,
		Message: message,
	})
}

// ParsePayload parses message payload into the given type
func (m *Message) ParsePayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}
