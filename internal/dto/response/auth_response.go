package response

import (
	"time"

	"github.com/go-demo/forum/internal/model"
)

// TokenResponse represents token response
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

// UserResponse represents a user response
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

// NewUserResponse creates a user response from model
func NewUserResponse(user *model.User, includeEmail bool) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if includeEmail {
		resp.Email = user.Email
	}
	return resp
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  *UserResponse  `json:"user"`
	Token *TokenResponse `json:"token"`
}

// ProfileResponse represents a public user profile with the rooms the user
// hosts and their recent messages.
type ProfileResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	JoinedAt string             `json:"joined_at"`
	Rooms    []*RoomResponse    `json:"rooms"`
	Messages []*MessageResponse `json:"messages"`
}

// NewProfileResponse creates a profile response from model
func NewProfileResponse(profile *model.UserProfile, rooms []*model.RoomWithDetails, messages []*model.MessageWithRoom) *ProfileResponse {
	roomResponses := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = NewRoomResponse(room)
	}

	messageResponses := make([]*MessageResponse, len(messages))
	for i, msg := range messages {
		messageResponses[i] = NewMessageWithRoomResponse(msg)
	}

	return &ProfileResponse{
		ID:       profile.ID,
		Username: profile.Username,
		JoinedAt: profile.JoinedAt,
		Rooms:    roomResponses,
		Messages: messageResponses,
	}
}
