package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	apperrors "github.com/go-demo/forum/internal/pkg/errors"
	"github.com/go-demo/forum/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BroadcastMessage represents a message to broadcast
type BroadcastMessage struct {
	RoomID  string
	Message *Message
	Sender  *Client // nil for system messages
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Clients by room: roomID -> clients
	rooms map[string]map[*Client]bool

	// Clients by user: userID -> clients (supports multiple connections)
	users map[string]map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Broadcast messages to room
	broadcast chan *BroadcastMessage

	mu sync.RWMutex

	roomService    *service.RoomService
	messageService *service.MessageService

	// Redis for Pub/Sub (horizontal scaling)
	redis *redis.Client

	logger *zap.Logger
}

// NewHub creates a new Hub
func NewHub(
	roomService *service.RoomService,
	messageService *service.MessageService,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		rooms:          make(map[string]map[*Client]bool),
		users:          make(map[string]map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		broadcast:      make(chan *BroadcastMessage, 256),
		roomService:    roomService,
		messageService: messageService,
		redis:          redisClient,
		logger:         logger,
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastToRoom(msg)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	if h.users[client.userID] == nil {
		h.users[client.userID] = make(map[*Client]bool)
	}
	h.users[client.userID][client] = true

	h.logger.Info("Client connected",
		zap.String("user_id", client.userID),
		zap.String("username", client.username),
		zap.Int("total_clients", len(h.clients)),
	)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()

	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}

	delete(h.clients, client)

	if userClients, ok := h.users[client.userID]; ok {
		delete(userClients, client)
		if len(userClients) == 0 {
			delete(h.users, client.userID)
		}
	}

	// Remove from all rooms
	for roomID := range client.rooms {
		if roomClients, ok := h.rooms[roomID]; ok {
			delete(roomClients, client)
			if len(roomClients) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}

	h.mu.Unlock()

	client.Close()

	h.logger.Info("Client disconnected",
		zap.String("user_id", client.userID),
		zap.String("username", client.username),
	)
}

// JoinRoom subscribes a client to a room's live feed. Rooms are public, so
// the only requirement is that the room exists.
func (h *Hub) JoinRoom(client *Client, roomID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	room, _, participants, err := h.roomService.GetDetail(ctx, roomID, 1, 0)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			client.sendError(appErr.Code, appErr.Message)
		} else {
			client.sendError(500, "伺服器錯誤")
		}
		return
	}

	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	h.mu.Unlock()

	client.JoinRoom(roomID)

	joinedMsg, _ := NewMessage(MessageTypeRoomJoined, &RoomJoinedPayload{
		RoomID:           roomID,
		RoomName:         room.Name,
		TopicName:        room.GetTopicName(),
		ParticipantCount: len(participants),
	})
	client.SendMessage(joinedMsg)

	h.logger.Debug("Client joined room",
		zap.String("user_id", client.userID),
		zap.String("room_id", roomID),
	)
}

// LeaveRoom unsubscribes a client from a room's live feed
func (h *Hub) LeaveRoom(client *Client, roomID string) {
	h.mu.Lock()
	if roomClients, ok := h.rooms[roomID]; ok {
		delete(roomClients, client)
		if len(roomClients) == 0 {
			delete(h.rooms, roomID)
		}
	}
	h.mu.Unlock()

	client.LeaveRoom(roomID)

	leftMsg, _ := NewMessage(MessageTypeRoomLeft, &LeaveRoomPayload{RoomID: roomID})
	client.SendMessage(leftMsg)

	h.logger.Debug("Client left room",
		zap.String("user_id", client.userID),
		zap.String("room_id", roomID),
	)
}

// SendMessage persists a message and broadcasts it to the room's
// subscribers. The same posting rules apply as over REST: the body must not
// be blank and the author becomes a participant.
func (h *Hub) SendMessage(client *Client, payload SendMessagePayload, requestID string) {
	if !client.IsInRoom(payload.RoomID) {
		client.sendError(403, "您尚未加入該討論室")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, err := h.messageService.Post(ctx, &service.PostInput{
		RoomID: payload.RoomID,
		UserID: client.userID,
		Body:   payload.Body,
	})
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			client.sendError(appErr.Code, appErr.Message)
		} else {
			client.sendError(500, "發送訊息失敗")
		}
		return
	}

	// Send acknowledgement to sender
	ackMsg, _ := NewMessage(MessageTypeAck, &AckPayload{
		RequestID: requestID,
		Success:   true,
		MessageID: msg.ID,
	})
	client.SendMessage(ackMsg)

	broadcastPayload := &NewMessagePayload{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		UserID:    msg.UserID,
		Username:  client.username,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}

	broadcastMsg, _ := NewMessage(MessageTypeNewMessage, broadcastPayload)

	h.broadcast <- &BroadcastMessage{
		RoomID:  payload.RoomID,
		Message: broadcastMsg,
		Sender:  client,
	}

	// Publish to Redis for horizontal scaling
	h.publishToRedis("room:"+payload.RoomID, broadcastMsg)
}

func (h *Hub) broadcastToRoom(bm *BroadcastMessage) {
	h.mu.RLock()
	clients := h.rooms[bm.RoomID]
	h.mu.RUnlock()

	for client := range clients {
		// The sender already got an acknowledgement
		if bm.Sender != nil && client == bm.Sender {
			continue
		}
		client.SendMessage(bm.Message)
	}
}

// Redis Pub/Sub for horizontal scaling
func (h *Hub) publishToRedis(channel string, msg *Message) {
	if h.redis == nil {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	ctx := context.Background()
	h.redis.Publish(ctx, channel, data)
}

// GetOnlineUsers returns online user IDs
func (h *Hub) GetOnlineUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	userIDs := make([]string, 0, len(h.users))
	for userID := range h.users {
		userIDs = append(userIDs, userID)
	}
	return userIDs
}

// IsUserOnline checks if a user is online
func (h *Hub) IsUserOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID]) > 0
}

// GetRoomClients returns the number of clients in a room
func (h *Hub) GetRoomClients(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// GetStats returns hub statistics
func (h *Hub) GetStats() map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return map[string]int{
		"total_clients": len(h.clients),
		"online_users":  len(h.users),
		"active_rooms":  len(h.rooms),
	}
}
