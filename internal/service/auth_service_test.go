package service

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/go-demo/forum/internal/pkg/errors"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/go-demo/forum/internal/repository"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func setupTestAuthService(t *testing.T) (*AuthService, *sqlx.DB) {
	t.Helper()

	dsn := "host=localhost port=5432 user=postgres password=postgres dbname=forum_test sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Skipping test, could not connect to test database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour, "forum-test")
	logger := zap.NewNop()

	service := NewAuthService(userRepo, jwtManager, logger)
	return service, db
}

func TestAuthService_Register(t *testing.T) {
	service, db := setupTestAuthService(t)
	defer db.Close()
	defer cleanupRoomServiceTestDB(t, db)

	ctx := context.Background()

	result, err := service.Register(ctx, &RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if result.User.ID == "" {
		t.Error("Expected user ID to be set")
	}
	if result.TokenPair.AccessToken == "" || result.TokenPair.RefreshToken == "" {
		t.Error("Expected both tokens to be issued")
	}
	if result.User.PasswordHash == "password123" {
		t.Error("Expected password to be hashed")
	}

	// Duplicate username
	_, err = service.Register(ctx, &RegisterInput{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "password123",
	})
	if err != apperrors.ErrUsernameExists {
		t.Errorf("Expected ErrUsernameExists, got %v", err)
	}

	// Duplicate email
	_, err = service.Register(ctx, &RegisterInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != apperrors.ErrEmailExists {
		t.Errorf("Expected ErrEmailExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	service, db := setupTestAuthService(t)
	defer db.Close()
	defer cleanupRoomServiceTestDB(t, db)

	ctx := context.Background()

	_, err := service.Register(ctx, &RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	result, err := service.Login(ctx, &LoginInput{Username: "bob", Password: "password123"})
	if err != nil {
		t.Fatalf("Failed to login: %v", err)
	}
	if result.TokenPair.AccessToken == "" {
		t.Error("Expected access token to be issued")
	}

	// Wrong password and unknown user are indistinguishable
	_, err = service.Login(ctx, &LoginInput{Username: "bob", Password: "wrong"})
	if err != apperrors.ErrInvalidPassword {
		t.Errorf("Expected ErrInvalidPassword, got %v", err)
	}
	_, err = service.Login(ctx, &LoginInput{Username: "nobody", Password: "password123"})
	if err != apperrors.ErrInvalidPassword {
		t.Errorf("Expected ErrInvalidPassword for unknown user, got %v", err)
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	service, db := setupTestAuthService(t)
	defer db.Close()
	defer cleanupRoomServiceTestDB(t, db)

	ctx := context.Background()

	result, err := service.Register(ctx, &RegisterInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	pair, err := service.RefreshToken(ctx, result.TokenPair.RefreshToken)
	if err != nil {
		t.Fatalf("Failed to refresh token: %v", err)
	}
	if pair.AccessToken == "" {
		t.Error("Expected new access token")
	}

	// An access token is not accepted as a refresh token
	_, err = service.RefreshToken(ctx, result.TokenPair.AccessToken)
	if err != apperrors.ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	service, db := setupTestAuthService(t)
	defer db.Close()
	defer cleanupRoomServiceTestDB(t, db)

	ctx := context.Background()

	result, err := service.Register(ctx, &RegisterInput{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if err := service.DeleteAccount(ctx, result.User.ID); err != nil {
		t.Fatalf("Failed to delete account: %v", err)
	}

	_, err = service.GetCurrentUser(ctx, result.User.ID)
	if err != apperrors.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound after delete, got %v", err)
	}

	if err := service.DeleteAccount(ctx, result.User.ID); err != apperrors.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound on second delete, got %v", err)
	}
}
