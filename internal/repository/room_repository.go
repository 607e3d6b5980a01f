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
	ErrRoomNotFound = errors.New("room not found")
)

type RoomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	query := `
		INSERT INTO rooms (host_id, topic_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		room.HostID,
		room.TopicID,
		room.Name,
		room.Description,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	query := `SELECT * FROM rooms WHERE id = $1`

	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return &room, nil
}

// GetByIDWithDetails retrieves a room with topic name, host username and
// participant count
func (r *RoomRepository) GetByIDWithDetails(ctx context.Context, id string) (*model.RoomWithDetails, error) {
	var room model.RoomWithDetails
	query := `
		SELECT r.*, t.name AS topic_name, u.username AS host_username,
		       COUNT(rp.id) AS participant_count
		FROM rooms r
		LEFT JOIN topics t ON r.topic_id = t.id
		LEFT JOIN users u ON r.host_id = u.id
		LEFT JOIN room_participants rp ON rp.room_id = r.id
		WHERE r.id = $1
		GROUP BY r.id, t.name, u.username`

	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room with details: %w", err)
	}

	return &room, nil
}

// Update overwrites the room's mutable fields and bumps updated_at, which
// moves the room to the top of the default listing order.
func (r *RoomRepository) Update(ctx context.Context, room *model.Room) error {
	query := `
		UPDATE rooms
		SET topic_id = $2, name = $3, description = $4, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		room.ID,
		room.TopicID,
		room.Name,
		room.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete deletes a room. Its messages and participant rows cascade away
// (schema ON DELETE CASCADE).
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Search lists rooms matching the query, most recently active first. The
// match is a case-insensitive substring test against the topic name, room
// name or description; an empty query matches every room.
func (r *RoomRepository) Search(ctx context.Context, query string, limit, offset int) ([]*model.RoomWithDetails, error) {
	searchQuery := `
		SELECT r.*, t.name AS topic_name, u.username AS host_username,
		       COUNT(rp.id) AS participant_count
		FROM rooms r
		LEFT JOIN topics t ON r.topic_id = t.id
		LEFT JOIN users u ON r.host_id = u.id
		LEFT JOIN room_participants rp ON rp.room_id = r.id
		WHERE t.name ILIKE $1 OR r.name ILIKE $1 OR r.description ILIKE $1
		GROUP BY r.id, t.name, u.username
		ORDER BY r.updated_at DESC, r.created_at DESC
		LIMIT $2 OFFSET $3`

	var rooms []*model.RoomWithDetails
	pattern := "%" + query + "%"

	if err := r.db.SelectContext(ctx, &rooms, searchQuery, pattern, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}

	return rooms, nil
}

// CountMatching counts rooms matching the query with the same predicate as
// Search
func (r *RoomRepository) CountMatching(ctx context.Context, query string) (int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM rooms r
		LEFT JOIN topics t ON r.topic_id = t.id
		WHERE t.name ILIKE $1 OR r.name ILIKE $1 OR r.description ILIKE $1`

	var count int
	pattern := "%" + query + "%"

	if err := r.db.GetContext(ctx, &count, countQuery, pattern); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return count, nil
}

// ListByHost lists rooms hosted by the given user, most recently active
// first
func (r *RoomRepository) ListByHost(ctx context.Context, userID string) ([]*model.RoomWithDetails, error) {
	query := `
		SELECT r.*, t.name AS topic_name, u.username AS host_username,
		       COUNT(rp.id) AS participant_count
		FROM rooms r
		LEFT JOIN topics t ON r.topic_id = t.id
		LEFT JOIN users u ON r.host_id = u.id
		LEFT JOIN room_participants rp ON rp.room_id = r.id
		WHERE r.host_id = $1
		GROUP BY r.id, t.name, u.username
		ORDER BY r.updated_at DESC, r.created_at DESC`

	var rooms []*model.RoomWithDetails
	if err := r.db.SelectContext(ctx, &rooms, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list rooms by host: %w", err)
	}

	return rooms, nil
}

// AddParticipant adds a user to the room's participant set. The add is
// idempotent: a user already in the set is left untouched.
func (r *RoomRepository) AddParticipant(ctx context.Context, roomID, userID string) error {
	query := `
		INSERT INTO room_participants (room_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (room_id, user_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, roomID, userID); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	return nil
}

// IsParticipant checks if a user is in the room's participant set
func (r *RoomRepository) IsParticipant(ctx context.Context, roomID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM room_participants WHERE room_id = $1 AND user_id = $2)`

	if err := r.db.GetContext(ctx, &exists, query, roomID, userID); err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}

	return exists, nil
}

// ListParticipants lists the room's participants with usernames
func (r *RoomRepository) ListParticipants(ctx context.Context, roomID string) ([]*model.ParticipantWithUser, error) {
	query := `
		SELECT rp.*, u.username
		FROM room_participants rp
		INNER JOIN users u ON rp.user_id = u.id
		WHERE rp.room_id = $1
		ORDER BY rp.joined_at`

	var participants []*model.ParticipantWithUser
	if err := r.db.SelectContext(ctx, &participants, query, roomID); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return participants, nil
}
