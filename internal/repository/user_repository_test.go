package repository

import (
	"context"
	"testing"

	"github.com/go-demo/forum/internal/model"
	_ "github.com/lib/pq"
)

func TestUserRepository_Create(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{
		Username:     prefix + "_alice",
		Email:        prefix + "_alice@test.example.com",
		PasswordHash: "hashedpassword",
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if user.ID == "" {
		t.Error("Expected user ID to be set")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	user := CreateIsolatedTestUser(t, db, prefix, "alice")
	repo := NewUserRepository(db)
	ctx := context.Background()

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}

	if found.Username != user.Username {
		t.Errorf("Expected username %s, got %s", user.Username, found.Username)
	}

	// Test not found
	_, err = repo.GetByID(ctx, roomNonExistentUUID)
	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	user := CreateIsolatedTestUser(t, db, prefix, "alice")
	repo := NewUserRepository(db)
	ctx := context.Background()

	found, err := repo.GetByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("Failed to get user by username: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("Expected ID %s, got %s", user.ID, found.ID)
	}

	_, err = repo.GetByUsername(ctx, prefix+"_nobody")
	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_Exists(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	user := CreateIsolatedTestUser(t, db, prefix, "alice")
	repo := NewUserRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("Failed to check username: %v", err)
	}
	if !exists {
		t.Error("Expected username to exist")
	}

	exists, err = repo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("Failed to check email: %v", err)
	}
	if !exists {
		t.Error("Expected email to exist")
	}

	exists, _ = repo.ExistsByUsername(ctx, prefix+"_nobody")
	if exists {
		t.Error("Expected username to not exist")
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	user := CreateIsolatedTestUser(t, db, prefix, "alice")
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	if _, err := repo.GetByID(ctx, user.ID); err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, user.ID); err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound on second delete, got %v", err)
	}
}
