package model

import (
	"database/sql"
	"time"
)

// Message is a post inside a room. Both references are required; deleting the
// room or the author cascades to the message.
type Message struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	RoomID    string    `db:"room_id" json:"room_id"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CanModify reports whether userID may delete the message. Only the author
// may.
func (m *Message) CanModify(userID string) bool {
	return userID != "" && m.UserID == userID
}

// MessageWithUser includes the author's username
type MessageWithUser struct {
	Message
	Username string `db:"username" json:"username"`
}

// MessageWithRoom includes author and room context for feeds and search
// results.
type MessageWithRoom struct {
	Message
	Username  string         `db:"username" json:"username"`
	RoomName  string         `db:"room_name" json:"room_name"`
	TopicName sql.NullString `db:"topic_name" json:"topic_name,omitempty"`
}

// GetTopicName returns the room's topic name or empty string
func (m *MessageWithRoom) GetTopicName() string {
	if m.TopicName.Valid {
		return m.TopicName.String
	}
	return ""
}
