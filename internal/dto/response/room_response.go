package response

import (
	"time"

	"github.com/go-demo/forum/internal/model"
)

// RoomResponse represents a room in listings and search results
type RoomResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Topic            string `json:"topic,omitempty"`
	HostID           string `json:"host_id,omitempty"`
	HostUsername     string `json:"host_username,omitempty"`
	ParticipantCount int    `json:"participant_count"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// NewRoomResponse creates a room response from model
func NewRoomResponse(room *model.RoomWithDetails) *RoomResponse {
	return &RoomResponse{
		ID:               room.ID,
		Name:             room.Name,
		Description:      room.GetDescription(),
		Topic:            room.GetTopicName(),
		HostID:           room.GetHostID(),
		HostUsername:     room.GetHostUsername(),
		ParticipantCount: room.ParticipantCount,
		CreatedAt:        room.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        room.UpdatedAt.Format(time.RFC3339),
	}
}

// ParticipantResponse represents a room participant
type ParticipantResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	JoinedAt string `json:"joined_at"`
}

// NewParticipantResponse creates a participant response from model
func NewParticipantResponse(p *model.ParticipantWithUser) *ParticipantResponse {
	return &ParticipantResponse{
		UserID:   p.UserID,
		Username: p.Username,
		JoinedAt: p.JoinedAt.Format(time.RFC3339),
	}
}

// RoomDetailResponse represents a room with its messages and participants
type RoomDetailResponse struct {
	Room         *RoomResponse          `json:"room"`
	Messages     []*MessageResponse     `json:"messages"`
	Participants []*ParticipantResponse `json:"participants"`
}

// NewRoomDetailResponse creates a detailed room response
func NewRoomDetailResponse(room *model.RoomWithDetails, messages []*model.MessageWithUser, participants []*model.ParticipantWithUser) *RoomDetailResponse {
	messageResponses := make([]*MessageResponse, len(messages))
	for i, msg := range messages {
		messageResponses[i] = NewMessageResponse(msg)
	}

	participantResponses := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		participantResponses[i] = NewParticipantResponse(p)
	}

	return &RoomDetailResponse{
		Room:         NewRoomResponse(room),
		Messages:     messageResponses,
		Participants: participantResponses,
	}
}

// RoomListResponse represents a list of rooms
type RoomListResponse struct {
	Rooms      []*RoomResponse `json:"rooms"`
	RoomCount  int             `json:"room_count"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// NewRoomListResponse creates a room list response. RoomCount is the number
// of rooms on this page, Total the number of rooms matching the query.
func NewRoomListResponse(rooms []*model.RoomWithDetails, total, page, limit int) *RoomListResponse {
	roomResponses := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = NewRoomResponse(room)
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &RoomListResponse{
		Rooms:      roomResponses,
		RoomCount:  len(roomResponses),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
