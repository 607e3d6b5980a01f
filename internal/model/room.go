package model

import (
	"database/sql"
	"time"
)

// Room is a discussion room. Host and topic references are cleared (not
// cascaded) when the referenced user or topic is deleted, so both columns are
// nullable and the room itself survives.
type Room struct {
	ID          string         `db:"id" json:"id"`
	HostID      sql.NullString `db:"host_id" json:"host_id,omitempty"`
	TopicID     sql.NullString `db:"topic_id" json:"topic_id,omitempty"`
	Name        string         `db:"name" json:"name"`
	Description sql.NullString `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// GetDescription returns description or empty string
func (r *Room) GetDescription() string {
	if r.Description.Valid {
		return r.Description.String
	}
	return ""
}

// GetHostID returns host_id or empty string
func (r *Room) GetHostID() string {
	if r.HostID.Valid {
		return r.HostID.String
	}
	return ""
}

// HasHost reports whether the room still has a host. A room loses its host
// when the host account is deleted.
func (r *Room) HasHost() bool {
	return r.HostID.Valid
}

// CanModify reports whether userID may edit or delete the room. Only the
// host may. A room without a host can never be modified again; that is a
// consequence of the ownership model, not an oversight.
func (r *Room) CanModify(userID string) bool {
	return r.HostID.Valid && userID != "" && r.HostID.String == userID
}

// RoomWithDetails includes topic name, host username and participant count
// for listing and search results.
type RoomWithDetails struct {
	Room
	TopicName        sql.NullString `db:"topic_name" json:"topic_name,omitempty"`
	HostUsername     sql.NullString `db:"host_username" json:"host_username,omitempty"`
	ParticipantCount int            `db:"participant_count" json:"participant_count"`
}

// GetTopicName returns the topic name or empty string
func (r *RoomWithDetails) GetTopicName() string {
	if r.TopicName.Valid {
		return r.TopicName.String
	}
	return ""
}

// GetHostUsername returns the host username or empty string
func (r *RoomWithDetails) GetHostUsername() string {
	if r.HostUsername.Valid {
		return r.HostUsername.String
	}
	return ""
}

// Participant represents a user who has posted in a room. Membership is
// additive only: joining happens by posting a message and is never undone.
type Participant struct {
	ID       string    `db:"id" json:"id"`
	RoomID   string    `db:"room_id" json:"room_id"`
	UserID   string    `db:"user_id" json:"user_id"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}

// ParticipantWithUser includes the participant's username
type ParticipantWithUser struct {
	Participant
	Username string `db:"username" json:"username"`
}
