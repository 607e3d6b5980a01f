package service

import (
	"context"
	"strings"

	"github.com/go-demo/forum/internal/model"
	apperrors "github.com/go-demo/forum/internal/pkg/errors"
	"github.com/go-demo/forum/internal/repository"
	"go.uber.org/zap"
)

type MessageService struct {
	messageRepo *repository.MessageRepository
	roomRepo    *repository.RoomRepository
	logger      *zap.Logger
}

func NewMessageService(
	messageRepo *repository.MessageRepository,
	roomRepo *repository.RoomRepository,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// PostInput represents message posting input
type PostInput struct {
	RoomID string
	UserID string
	Body   string
}

// Post creates a message in a room. Any authenticated user may post; posting
// also records the author as a participant of the room. The membership write
// is independent of the message write, so a failure there does not undo the
// message.
func (s *MessageService) Post(ctx context.Context, input *PostInput) (*model.Message, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, apperrors.ErrEmptyBody
	}

	if _, err := s.roomRepo.GetByID(ctx, input.RoomID); err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	msg := &model.Message{
		RoomID: input.RoomID,
		UserID: input.UserID,
		Body:   input.Body,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		s.logger.Error("Failed to create message", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	if err := s.roomRepo.AddParticipant(ctx, input.RoomID, input.UserID); err != nil {
		s.logger.Warn("Failed to add participant",
			zap.String("room_id", input.RoomID),
			zap.String("user_id", input.UserID),
			zap.Error(err),
		)
	}

	s.logger.Info("Message posted",
		zap.String("message_id", msg.ID),
		zap.String("room_id", input.RoomID),
		zap.String("user_id", input.UserID),
	)

	return msg, nil
}

// ListByRoom returns a room's messages, newest first
func (s *MessageService) ListByRoom(ctx context.Context, roomID string, limit, offset int) ([]*model.MessageWithUser, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	messages, err := s.messageRepo.ListByRoomID(ctx, roomID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list messages", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return messages, nil
}

// Delete removes a message. Only the author may delete it; room hosts have
// no say over other people's messages.
func (s *MessageService) Delete(ctx context.Context, messageID, userID string) error {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		if err == repository.ErrMessageNotFound {
			return apperrors.ErrMessageNotFound
		}
		s.logger.Error("Failed to get message", zap.Error(err))
		return apperrors.ErrInternal
	}

	if !msg.CanModify(userID) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		if err == repository.ErrMessageNotFound {
			return apperrors.ErrMessageNotFound
		}
		s.logger.Error("Failed to delete message", zap.Error(err))
		return apperrors.ErrInternal
	}

	s.logger.Info("Message deleted",
		zap.String("message_id", messageID),
		zap.String("user_id", userID),
	)

	return nil
}
