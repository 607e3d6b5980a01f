package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserProfile is a public-facing user profile
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	JoinedAt string `json:"joined_at"`
}

// ToProfile converts User to UserProfile
func (u *User) ToProfile() *UserProfile {
	return &UserProfile{
		ID:       u.ID,
		Username: u.Username,
		JoinedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
