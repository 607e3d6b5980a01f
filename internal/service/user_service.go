package service

import (
	"context"

	"github.com/go-demo/forum/internal/model"
	apperrors "github.com/go-demo/forum/internal/pkg/errors"
	"github.com/go-demo/forum/internal/repository"
	"go.uber.org/zap"
)

// profileFeedLimit caps the rooms and messages shown on a public profile.
const profileFeedLimit = 20

type UserService struct {
	userRepo    *repository.UserRepository
	roomRepo    *repository.RoomRepository
	messageRepo *repository.MessageRepository
	logger      *zap.Logger
}

func NewUserService(
	userRepo *repository.UserRepository,
	roomRepo *repository.RoomRepository,
	messageRepo *repository.MessageRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// ProfileResult is a public profile with the user's hosted rooms and recent
// messages.
type ProfileResult struct {
	Profile  *model.UserProfile
	Rooms    []*model.RoomWithDetails
	Messages []*model.MessageWithRoom
}

// GetProfile returns a user's public profile
func (s *UserService) GetProfile(ctx context.Context, userID string) (*ProfileResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	rooms, err := s.roomRepo.ListByHost(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list hosted rooms", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	messages, err := s.messageRepo.ListByUserID(ctx, userID, profileFeedLimit, 0)
	if err != nil {
		s.logger.Error("Failed to list user messages", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return &ProfileResult{
		Profile:  user.ToProfile(),
		Rooms:    rooms,
		Messages: messages,
	}, nil
}
