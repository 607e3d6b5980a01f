package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-demo/forum/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMessageNotFound = errors.New("message not found")
)

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `
		INSERT INTO messages (user_id, room_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		msg.UserID,
		msg.RoomID,
		msg.Body,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*model.Message, error) {
	var msg model.Message
	query := `SELECT * FROM messages WHERE id = $1`

	if err := r.db.GetContext(ctx, &msg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message by id: %w", err)
	}

	return &msg, nil
}

// Delete deletes a message
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM messages WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// ListByRoomID lists a room's messages, newest first
func (r *MessageRepository) ListByRoomID(ctx context.Context, roomID string, limit, offset int) ([]*model.MessageWithUser, error) {
	query := `
		SELECT m.*, u.username
		FROM messages m
		INNER JOIN users u ON m.user_id = u.id
		WHERE m.room_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3`

	var messages []*model.MessageWithUser
	if err := r.db.SelectContext(ctx, &messages, query, roomID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// ListByUserID lists a user's messages across all rooms, newest first
func (r *MessageRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*model.MessageWithRoom, error) {
	query := `
		SELECT m.*, u.username, r.name AS room_name, t.name AS topic_name
		FROM messages m
		INNER JOIN users u ON m.user_id = u.id
		INNER JOIN rooms r ON m.room_id = r.id
		LEFT JOIN topics t ON r.topic_id = t.id
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3`

	var messages []*model.MessageWithRoom
	if err := r.db.SelectContext(ctx, &messages, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list user messages: %w", err)
	}

	return messages, nil
}

// SearchByTopic lists messages whose parent room's topic name contains the
// query, newest first. Message bodies are deliberately not searched: the
// activity feed has always matched on the room's topic, and changing that
// would change what the feed shows.
func (r *MessageRepository) SearchByTopic(ctx context.Context, query string, limit, offset int) ([]*model.MessageWithRoom, error) {
	searchQuery := `
		SELECT m.*, u.username, r.name AS room_name, t.name AS topic_name
		FROM messages m
		INNER JOIN users u ON m.user_id = u.id
		INNER JOIN rooms r ON m.room_id = r.id
		LEFT JOIN topics t ON r.topic_id = t.id
		WHERE $1 = '' OR t.name ILIKE '%' || $1 || '%'
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3`

	var messages []*model.MessageWithRoom
	if err := r.db.SelectContext(ctx, &messages, searchQuery, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	return messages, nil
}
