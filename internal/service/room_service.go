package service

import (
	"context"
	"database/sql"

	"github.com/go-demo/forum/internal/model"
	apperrors "github.com/go-demo/forum/internal/pkg/errors"
	"github.com/go-demo/forum/internal/repository"
	"go.uber.org/zap"
)

type RoomService struct {
	roomRepo    *repository.RoomRepository
	topicRepo   *repository.TopicRepository
	messageRepo *repository.MessageRepository
	logger      *zap.Logger
}

func NewRoomService(
	roomRepo *repository.RoomRepository,
	topicRepo *repository.TopicRepository,
	messageRepo *repository.MessageRepository,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		topicRepo:   topicRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// CreateRoomInput represents room creation input
type CreateRoomInput struct {
	HostID      string
	TopicName   string
	Name        string
	Description string
}

// Create creates a new room. The topic is resolved by name and created on
// the fly when it does not exist yet.
func (s *RoomService) Create(ctx context.Context, input *CreateRoomInput) (*model.Room, error) {
	topic, err := s.topicRepo.GetOrCreate(ctx, input.TopicName)
	if err != nil {
		s.logger.Error("Failed to get or create topic", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	room := &model.Room{
		HostID:  sql.NullString{String: input.HostID, Valid: true},
		TopicID: sql.NullString{String: topic.ID, Valid: true},
		Name:    input.Name,
	}

	if input.Description != "" {
		room.Description = sql.NullString{String: input.Description, Valid: true}
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		s.logger.Error("Failed to create room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("Room created",
		zap.String("room_id", room.ID),
		zap.String("name", room.Name),
		zap.String("host_id", input.HostID),
		zap.String("topic", topic.Name),
	)

	return room, nil
}

// GetByID retrieves a room by ID
func (s *RoomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	return room, nil
}

// GetDetail retrieves a room with its message feed and participant list
func (s *RoomService) GetDetail(ctx context.Context, id string, limit, offset int) (*model.RoomWithDetails, []*model.MessageWithUser, []*model.ParticipantWithUser, error) {
	room, err := s.roomRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, nil, nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return nil, nil, nil, apperrors.ErrInternal
	}

	messages, err := s.messageRepo.ListByRoomID(ctx, id, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list room messages", zap.Error(err))
		return nil, nil, nil, apperrors.ErrInternal
	}

	participants, err := s.roomRepo.ListParticipants(ctx, id)
	if err != nil {
		s.logger.Error("Failed to list room participants", zap.Error(err))
		return nil, nil, nil, apperrors.ErrInternal
	}

	return room, messages, participants, nil
}

// UpdateRoomInput represents room update input
type UpdateRoomInput struct {
	RoomID      string
	UserID      string
	TopicName   string
	Name        string
	Description string
}

// Update edits a room. Only the host may edit, and the topic name must refer
// to an existing topic: editing never creates topics.
func (s *RoomService) Update(ctx context.Context, input *UpdateRoomInput) (*model.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	if !room.CanModify(input.UserID) {
		return nil, apperrors.ErrPermissionDenied
	}

	topic, err := s.topicRepo.GetByName(ctx, input.TopicName)
	if err != nil {
		if err == repository.ErrTopicNotFound {
			return nil, apperrors.ErrTopicNotFound
		}
		s.logger.Error("Failed to get topic", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	room.TopicID = sql.NullString{String: topic.ID, Valid: true}
	room.Name = input.Name
	room.Description = sql.NullString{}
	if input.Description != "" {
		room.Description = sql.NullString{String: input.Description, Valid: true}
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to update room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("Room updated",
		zap.String("room_id", room.ID),
		zap.String("user_id", input.UserID),
	)

	return room, nil
}

// Delete removes a room. Only the host may delete; all messages in the room
// go with it.
func (s *RoomService) Delete(ctx context.Context, roomID, userID string) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return apperrors.ErrInternal
	}

	if !room.CanModify(userID) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if err == repository.ErrRoomNotFound {
			return apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to delete room", zap.Error(err))
		return apperrors.ErrInternal
	}

	s.logger.Info("Room deleted",
		zap.String("room_id", roomID),
		zap.String("user_id", userID),
	)

	return nil
}

// List returns rooms matching the query, most recently active first. An
// empty query matches every room.
func (s *RoomService) List(ctx context.Context, query string, limit, offset int) ([]*model.RoomWithDetails, int, error) {
	rooms, err := s.roomRepo.Search(ctx, query, limit, offset)
	if err != nil {
		s.logger.Error("Failed to search rooms", zap.Error(err))
		return nil, 0, apperrors.ErrInternal
	}

	total, err := s.roomRepo.CountMatching(ctx, query)
	if err != nil {
		s.logger.Error("Failed to count rooms", zap.Error(err))
		return nil, 0, apperrors.ErrInternal
	}

	return rooms, total, nil
}
