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
	ErrTopicNotFound = errors.New("topic not found")
)

type TopicRepository struct {
	db *sqlx.DB
}

func NewTopicRepository(db *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// GetOrCreate returns the topic with the given name, creating it if absent.
// The match is a case-sensitive exact comparison. There is no unique index on
// the name, so two concurrent callers may both insert; last write wins and
// the duplicate row is harmless.
func (r *TopicRepository) GetOrCreate(ctx context.Context, name string) (*model.Topic, error) {
	topic, err := r.GetByName(ctx, name)
	if err == nil {
		return topic, nil
	}
	if !errors.Is(err, ErrTopicNotFound) {
		return nil, err
	}

	var created model.Topic
	query := `
		INSERT INTO topics (name)
		VALUES ($1)
		RETURNING id, name, created_at`

	if err := r.db.GetContext(ctx, &created, query, name); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	return &created, nil
}

// GetByName retrieves a topic by exact name
func (r *TopicRepository) GetByName(ctx context.Context, name string) (*model.Topic, error) {
	var topic model.Topic
	query := `SELECT * FROM topics WHERE name = $1 ORDER BY created_at LIMIT 1`

	if err := r.db.GetContext(ctx, &topic, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic by name: %w", err)
	}

	return &topic, nil
}

// GetByID retrieves a topic by ID
func (r *TopicRepository) GetByID(ctx context.Context, id string) (*model.Topic, error) {
	var topic model.Topic
	query := `SELECT * FROM topics WHERE id = $1`

	if err := r.db.GetContext(ctx, &topic, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic by id: %w", err)
	}

	return &topic, nil
}

// List lists all topics with the number of rooms under each
func (r *TopicRepository) List(ctx context.Context) ([]*model.TopicWithRoomCount, error) {
	query := `
		SELECT t.*, COUNT(r.id) AS room_count
		FROM topics t
		LEFT JOIN rooms r ON r.topic_id = t.id
		GROUP BY t.id
		ORDER BY t.name`

	var topics []*model.TopicWithRoomCount
	if err := r.db.SelectContext(ctx, &topics, query); err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	return topics, nil
}
