package model

import (
	"time"
)

// Topic is a free-text category label shared across rooms. Topics are created
// implicitly when a room is created or edited and are never deleted; a topic
// that no room references simply lingers.
type Topic struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TopicWithRoomCount includes the number of rooms under the topic
type TopicWithRoomCount struct {
	Topic
	RoomCount int `db:"room_count" json:"room_count"`
}
