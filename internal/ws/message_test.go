package ws

import (
	"encoding/json"
	"testing"
)

func TestNewMessage(t *testing.T) {
	payload := &JoinRoomPayload{RoomID: "room-123"}

	msg, err := NewMessage(MessageTypeJoinRoom, payload)
	if err != nil {
		t.Fatalf("Failed to create message: %v", err)
	}

	if msg.Type != MessageTypeJoinRoom {
		t.Errorf("Expected type %s, got %s", MessageTypeJoinRoom, msg.Type)
	}

	if msg.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}

	if len(msg.Payload) == 0 {
		t.Error("Expected payload to be set")
	}
}

func TestNewErrorMessage(t *testing.T) {
	msg, err := NewErrorMessage(400, "Bad Request")
	if err != nil {
		t.Fatalf("Failed to create error message: %v", err)
	}

	if msg.Type != MessageTypeError {
		t.Errorf("Expected type %s, got %s", MessageTypeError, msg.Type)
	}

	var payload ErrorPayload
	if err := msg.ParsePayload(&payload); err != nil {
		t.Fatalf("Failed to parse payload: %v", err)
	}

	if payload.Code != 400 {
		t.Errorf("Expected code 400, got %d", payload.Code)
	}

	if payload.Message != "Bad Request" {
		t.Errorf("Expected message 'Bad Request', got '%s'", payload.Message)
	}
}

func TestMessage_ParsePayload(t *testing.T) {
	original := &SendMessagePayload{
		RoomID: "room-123",
		Body:   "Hello, World!",
	}

	msg, _ := NewMessage(MessageTypeSendMessage, original)

	var parsed SendMessagePayload
	if err := msg.ParsePayload(&parsed); err != nil {
		t.Fatalf("Failed to parse payload: %v", err)
	}

	if parsed.RoomID != original.RoomID {
		t.Errorf("Expected RoomID %s, got %s", original.RoomID, parsed.RoomID)
	}

	if parsed.Body != original.Body {
		t.Errorf("Expected Body %s, got %s", original.Body, parsed.Body)
	}
}

func TestMessage_JSONSerialization(t *testing.T) {
	payload := &NewMessagePayload{
		ID:        "msg-123",
		RoomID:    "room-456",
		UserID:    "user-789",
		Username:  "testuser",
		Body:      "Hello!",
		CreatedAt: "2024-01-01T00:00:00Z",
	}

	msg, _ := NewMessage(MessageTypeNewMessage, payload)

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal message: %v", err)
	}

	var parsed Message
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	if parsed.Type != msg.Type {
		t.Errorf("Expected type %s, got %s", msg.Type, parsed.Type)
	}
}

func TestRoomJoinedPayload(t *testing.T) {
	payload := RoomJoinedPayload{
		RoomID:           "room-123",
		RoomName:         "Go 討論室",
		TopicName:        "Golang",
		ParticipantCount: 7,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var parsed RoomJoinedPayload
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if parsed.RoomName != payload.RoomName {
		t.Errorf("Expected RoomName %s, got %s", payload.RoomName, parsed.RoomName)
	}
	if parsed.ParticipantCount != payload.ParticipantCount {
		t.Errorf("Expected ParticipantCount %d, got %d", payload.ParticipantCount, parsed.ParticipantCount)
	}
}

func TestAckPayload(t *testing.T) {
	payload := AckPayload{
		RequestID: "req-123",
		Success:   true,
		MessageID: "msg-456",
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var parsed AckPayload
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if parsed.RequestID != payload.RequestID {
		t.Errorf("Expected RequestID %s, got %s", payload.RequestID, parsed.RequestID)
	}
	if parsed.Success != payload.Success {
		t.Errorf("Expected Success %v, got %v", payload.Success, parsed.Success)
	}
}
