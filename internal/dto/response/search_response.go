package response

import (
	"github.com/go-demo/forum/internal/model"
)

// TopicResponse represents a topic with its room count
type TopicResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RoomCount int    `json:"room_count"`
}

// NewTopicResponse creates a topic response from model
func NewTopicResponse(t *model.TopicWithRoomCount) *TopicResponse {
	return &TopicResponse{
		ID:        t.ID,
		Name:      t.Name,
		RoomCount: t.RoomCount,
	}
}

// SearchResponse is the combined browse/search result: matching rooms, the
// full topic list and the recent-activity message feed.
type SearchResponse struct {
	Rooms     []*RoomResponse    `json:"rooms"`
	RoomCount int                `json:"room_count"`
	Topics    []*TopicResponse   `json:"topics"`
	Messages  []*MessageResponse `json:"messages"`
}

// NewSearchResponse creates a search response
func NewSearchResponse(rooms []*model.RoomWithDetails, roomCount int, topics []*model.TopicWithRoomCount, messages []*model.MessageWithRoom) *SearchResponse {
	roomResponses := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = NewRoomResponse(room)
	}

	topicResponses := make([]*TopicResponse, len(topics))
	for i, t := range topics {
		topicResponses[i] = NewTopicResponse(t)
	}

	messageResponses := make([]*MessageResponse, len(messages))
	for i, m := range messages {
		messageResponses[i] = NewMessageWithRoomResponse(m)
	}

	return &SearchResponse{
		Rooms:     roomResponses,
		RoomCount: roomCount,
		Topics:    topicResponses,
		Messages:  messageResponses,
	}
}
