package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-demo/forum/internal/model"
	"github.com/go-demo/forum/internal/pkg/cache"
	apperrors "github.com/go-demo/forum/internal/pkg/errors"
	"github.com/go-demo/forum/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// topicListTTL keeps the cached topic sidebar reasonably fresh without
// hitting the database on every browse request.
const topicListTTL = 30 * time.Second

type SearchService struct {
	roomRepo    *repository.RoomRepository
	topicRepo   *repository.TopicRepository
	messageRepo *repository.MessageRepository
	cache       *cache.Cache
	logger      *zap.Logger
}

func NewSearchService(
	roomRepo *repository.RoomRepository,
	topicRepo *repository.TopicRepository,
	messageRepo *repository.MessageRepository,
	c *cache.Cache,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		roomRepo:    roomRepo,
		topicRepo:   topicRepo,
		messageRepo: messageRepo,
		cache:       c,
		logger:      logger,
	}
}

// SearchResult is the combined browse result
type SearchResult struct {
	Rooms     []*model.RoomWithDetails
	RoomCount int
	Topics    []*model.TopicWithRoomCount
	Messages  []*model.MessageWithRoom
}

// Search runs the combined browse query: rooms matching the query by topic
// name, room name or description; the full topic list; and the activity feed
// of messages whose room's topic matches. An empty query matches everything.
func (s *SearchService) Search(ctx context.Context, query string, limit, offset int) (*SearchResult, error) {
	rooms, err := s.roomRepo.Search(ctx, query, limit, offset)
	if err != nil {
		s.logger.Error("Failed to search rooms", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	topics, err := s.listTopics(ctx)
	if err != nil {
		s.logger.Error("Failed to list topics", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	messages, err := s.messageRepo.SearchByTopic(ctx, query, limit, offset)
	if err != nil {
		s.logger.Error("Failed to search messages", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return &SearchResult{
		Rooms:     rooms,
		RoomCount: len(rooms),
		Topics:    topics,
		Messages:  messages,
	}, nil
}

// ListTopics returns all topics with room counts, served from cache when
// possible.
func (s *SearchService) ListTopics(ctx context.Context) ([]*model.TopicWithRoomCount, error) {
	topics, err := s.listTopics(ctx)
	if err != nil {
		s.logger.Error("Failed to list topics", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	return topics, nil
}

func (s *SearchService) listTopics(ctx context.Context) ([]*model.TopicWithRoomCount, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cache.KeyTopicList)
		if err == nil {
			var topics []*model.TopicWithRoomCount
			if err := json.Unmarshal([]byte(cached), &topics); err == nil {
				return topics, nil
			}
			// A corrupt entry is dropped and rebuilt below
			_ = s.cache.Delete(ctx, cache.KeyTopicList)
		} else if err != redis.Nil {
			s.logger.Warn("Topic cache read failed", zap.Error(err))
		}
	}

	topics, err := s.topicRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(topics); err == nil {
			if err := s.cache.Set(ctx, cache.KeyTopicList, data, topicListTTL); err != nil {
				s.logger.Warn("Topic cache write failed", zap.Error(err))
			}
		}
	}

	return topics, nil
}
