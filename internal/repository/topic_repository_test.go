package repository

import (
	"context"
	"testing"

	_ "github.com/lib/pq"
)

func TestTopicRepository_GetOrCreate(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewTopicRepository(db)
	ctx := context.Background()

	name := prefix + "_python"

	topic, err := repo.GetOrCreate(ctx, name)
	if err != nil {
		t.Fatalf("Failed to get or create topic: %v", err)
	}

	if topic.ID == "" {
		t.Error("Expected topic ID to be set")
	}
	if topic.Name != name {
		t.Errorf("Expected name %s, got %s", name, topic.Name)
	}

	// Calling again must return the same record, not a duplicate
	again, err := repo.GetOrCreate(ctx, name)
	if err != nil {
		t.Fatalf("Failed to get existing topic: %v", err)
	}

	if again.ID != topic.ID {
		t.Errorf("Expected same topic ID %s, got %s", topic.ID, again.ID)
	}
}

func TestTopicRepository_GetOrCreate_CaseSensitive(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewTopicRepository(db)
	ctx := context.Background()

	lower, err := repo.GetOrCreate(ctx, prefix+"_go")
	if err != nil {
		t.Fatalf("Failed to create topic: %v", err)
	}

	// Different case is a different topic
	upper, err := repo.GetOrCreate(ctx, prefix+"_Go")
	if err != nil {
		t.Fatalf("Failed to create topic: %v", err)
	}

	if lower.ID == upper.ID {
		t.Error("Expected case-different names to create separate topics")
	}
}

func TestTopicRepository_GetByName_NotFound(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewTopicRepository(db)
	ctx := context.Background()

	_, err := repo.GetByName(ctx, prefix+"_missing")
	if err != ErrTopicNotFound {
		t.Errorf("Expected ErrTopicNotFound, got %v", err)
	}
}

func TestTopicRepository_List(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewTopicRepository(db)
	ctx := context.Background()

	topic, _ := repo.GetOrCreate(ctx, prefix+"_django")
	host := CreateIsolatedTestUser(t, db, prefix, "host")
	CreateIsolatedTestRoom(t, db, prefix, host, topic)

	topics, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list topics: %v", err)
	}

	var found bool
	for _, tp := range topics {
		if tp.ID == topic.ID {
			found = true
			if tp.RoomCount != 1 {
				t.Errorf("Expected room count 1, got %d", tp.RoomCount)
			}
		}
	}
	if !found {
		t.Error("Expected created topic in list")
	}
}
