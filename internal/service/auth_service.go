package service

import (
	"context"
	"strings"

	"github.com/go-demo/forum/internal/model"
	apperrors "github.com/go-demo/forum/internal/pkg/errors"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/go-demo/forum/internal/repository"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterResult represents registration result
type RegisterResult struct {
	User      *model.User
	TokenPair *utils.TokenPair
}

// Register registers a new user. Usernames are stored lowercase.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*RegisterResult, error) {
	input.Username = strings.ToLower(input.Username)

	// Check if username exists
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Error("Failed to check username", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	// Check if email exists
	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	// Hash password
	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	// Create user
	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	// Generate tokens
	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &RegisterResult{
		User:      user,
		TokenPair: tokenPair,
	}, nil
}

// LoginInput represents login input
type LoginInput struct {
	Username string
	Password string
}

// LoginResult represents login result
type LoginResult struct {
	User      *model.User
	TokenPair *utils.TokenPair
}

// Login authenticates a user. An unknown username and a wrong password
// produce the same error so the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.ToLower(input.Username))
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.ErrInvalidPassword
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	// Check password
	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	// Generate tokens
	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &LoginResult{
		User:      user,
		TokenPair: tokenPair,
	}, nil
}

// RefreshToken refreshes an access token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	// Validate refresh token
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		if err == utils.ErrExpiredToken {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	// Generate new token pair
	tokenPair, err := s.jwtManager.GenerateTokenPair(claims.UserID, claims.Username)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return tokenPair, nil
}

// GetCurrentUser returns the authenticated user's own record
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	return user, nil
}

// DeleteAccount removes the user. Their rooms survive with the host cleared;
// their messages are removed with them.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if err == repository.ErrUserNotFound {
			return apperrors.ErrUserNotFound
		}
		s.logger.Error("Failed to delete user", zap.Error(err))
		return apperrors.ErrInternal
	}

	s.logger.Info("User account deleted", zap.String("user_id", userID))
	return nil
}
