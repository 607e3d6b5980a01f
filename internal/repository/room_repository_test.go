package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-demo/forum/internal/model"
	_ "github.com/lib/pq"
)

// 使用有效的 UUID 格式作為不存在的 ID
const roomNonExistentUUID = "00000000-0000-0000-0000-000000000000"

func TestRoomRepository_Create(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	topic := CreateIsolatedTestTopic(t, db, prefix, "python")
	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := &model.Room{
		HostID:      sql.NullString{String: host.ID, Valid: true},
		TopicID:     sql.NullString{String: topic.ID, Valid: true},
		Name:        prefix + "_Intro",
		Description: sql.NullString{String: "beginner friendly", Valid: true},
	}

	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	if room.ID == "" {
		t.Error("Expected room ID to be set")
	}
	if room.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestRoomRepository_GetByID(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	room := CreateIsolatedTestRoom(t, db, prefix, host, nil)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	found, err := repo.GetByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("Failed to get room: %v", err)
	}

	if found.Name != room.Name {
		t.Errorf("Expected name %s, got %s", room.Name, found.Name)
	}

	// Test not found
	_, err = repo.GetByID(ctx, roomNonExistentUUID)
	if err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomRepository_GetByIDWithDetails(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	topic := CreateIsolatedTestTopic(t, db, prefix, "rust")
	room := CreateIsolatedTestRoom(t, db, prefix, host, topic)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	_ = repo.AddParticipant(ctx, room.ID, host.ID)

	found, err := repo.GetByIDWithDetails(ctx, room.ID)
	if err != nil {
		t.Fatalf("Failed to get room with details: %v", err)
	}

	if found.GetTopicName() != topic.Name {
		t.Errorf("Expected topic name %s, got %s", topic.Name, found.GetTopicName())
	}
	if found.GetHostUsername() != host.Username {
		t.Errorf("Expected host username %s, got %s", host.Username, found.GetHostUsername())
	}
	if found.ParticipantCount != 1 {
		t.Errorf("Expected participant count 1, got %d", found.ParticipantCount)
	}
}

func TestRoomRepository_Update(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	room := CreateIsolatedTestRoom(t, db, prefix, host, nil)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	room.Name = prefix + "_renamed"
	room.Description = sql.NullString{String: "updated", Valid: true}

	if err := repo.Update(ctx, room); err != nil {
		t.Fatalf("Failed to update room: %v", err)
	}

	found, _ := repo.GetByID(ctx, room.ID)
	if found.Name != prefix+"_renamed" {
		t.Errorf("Expected updated name, got %s", found.Name)
	}
	if !found.UpdatedAt.After(found.CreatedAt) {
		t.Error("Expected updated_at to be bumped past created_at")
	}

	// Test not found
	missing := &model.Room{ID: roomNonExistentUUID, Name: "x"}
	if err := repo.Update(ctx, missing); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomRepository_Delete_CascadesMessages(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	room := CreateIsolatedTestRoom(t, db, prefix, host, nil)
	msg := CreateIsolatedTestMessage(t, db, prefix, host, room, "hello")

	roomRepo := NewRoomRepository(db)
	messageRepo := NewMessageRepository(db)
	ctx := context.Background()

	if err := roomRepo.Delete(ctx, room.ID); err != nil {
		t.Fatalf("Failed to delete room: %v", err)
	}

	if _, err := roomRepo.GetByID(ctx, room.ID); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound after delete, got %v", err)
	}

	// Messages must cascade away with the room
	if _, err := messageRepo.GetByID(ctx, msg.ID); err != ErrMessageNotFound {
		t.Errorf("Expected ErrMessageNotFound after room delete, got %v", err)
	}

	// Deleting again reports not found
	if err := roomRepo.Delete(ctx, room.ID); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomRepository_HostDeletion_ClearsHost(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	room := CreateIsolatedTestRoom(t, db, prefix, host, nil)

	userRepo := NewUserRepository(db)
	roomRepo := NewRoomRepository(db)
	ctx := context.Background()

	if err := userRepo.Delete(ctx, host.ID); err != nil {
		t.Fatalf("Failed to delete host: %v", err)
	}

	// The room survives with its host reference cleared
	found, err := roomRepo.GetByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("Expected room to survive host deletion: %v", err)
	}
	if found.HasHost() {
		t.Error("Expected host_id to be cleared")
	}
	if found.CanModify(host.ID) {
		t.Error("Expected host-less room to be locked for everyone")
	}
}

func TestRoomRepository_Search(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	topic := CreateIsolatedTestTopic(t, db, prefix, "Python")
	repo := NewRoomRepository(db)
	ctx := context.Background()

	byTopic := &model.Room{
		HostID:  sql.NullString{String: host.ID, Valid: true},
		TopicID: sql.NullString{String: topic.ID, Valid: true},
		Name:    prefix + "_general chat",
	}
	_ = repo.Create(ctx, byTopic)

	byDescription := &model.Room{
		HostID:      sql.NullString{String: host.ID, Valid: true},
		Name:        prefix + "_other",
		Description: sql.NullString{String: "all about " + prefix + "_PYTHON here", Valid: true},
	}
	_ = repo.Create(ctx, byDescription)

	unrelated := &model.Room{
		HostID: sql.NullString{String: host.ID, Valid: true},
		Name:   prefix + "_cooking",
	}
	_ = repo.Create(ctx, unrelated)

	// Case-insensitive substring over topic name, room name and description
	rooms, err := repo.Search(ctx, prefix+"_python", 20, 0)
	if err != nil {
		t.Fatalf("Failed to search rooms: %v", err)
	}

	if len(rooms) != 2 {
		t.Fatalf("Expected 2 matching rooms, got %d", len(rooms))
	}
	for _, r := range rooms {
		if r.ID == unrelated.ID {
			t.Error("Did not expect unrelated room in results")
		}
	}
}

func TestRoomRepository_Search_OrdersByActivity(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	repo := NewRoomRepository(db)
	ctx := context.Background()

	first := &model.Room{
		HostID: sql.NullString{String: host.ID, Valid: true},
		Name:   prefix + "_first",
	}
	_ = repo.Create(ctx, first)

	second := &model.Room{
		HostID: sql.NullString{String: host.ID, Valid: true},
		Name:   prefix + "_second",
	}
	_ = repo.Create(ctx, second)

	// Editing the older room moves it back to the top
	first.Name = prefix + "_first edited"
	_ = repo.Update(ctx, first)

	rooms, err := repo.Search(ctx, prefix+"_", 20, 0)
	if err != nil {
		t.Fatalf("Failed to search rooms: %v", err)
	}

	if len(rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].ID != first.ID {
		t.Errorf("Expected recently updated room first, got %s", rooms[0].Name)
	}
}

func TestRoomRepository_AddParticipant_Idempotent(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	poster := CreateIsolatedTestUser(t, db, prefix, "poster")
	room := CreateIsolatedTestRoom(t, db, prefix, host, nil)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	if err := repo.AddParticipant(ctx, room.ID, poster.ID); err != nil {
		t.Fatalf("Failed to add participant: %v", err)
	}

	// Adding the same user again must be a no-op
	if err := repo.AddParticipant(ctx, room.ID, poster.ID); err != nil {
		t.Fatalf("Expected idempotent add, got %v", err)
	}

	participants, err := repo.ListParticipants(ctx, room.ID)
	if err != nil {
		t.Fatalf("Failed to list participants: %v", err)
	}
	if len(participants) != 1 {
		t.Errorf("Expected 1 participant, got %d", len(participants))
	}

	isParticipant, _ := repo.IsParticipant(ctx, room.ID, poster.ID)
	if !isParticipant {
		t.Error("Expected poster to be a participant")
	}
}

func TestRoomRepository_ListByHost(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	host := CreateIsolatedTestUser(t, db, prefix, "host")
	other := CreateIsolatedTestUser(t, db, prefix, "other")
	CreateIsolatedTestRoom(t, db, prefix, host, nil)
	CreateIsolatedTestRoom(t, db, prefix, other, nil)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	rooms, err := repo.ListByHost(ctx, host.ID)
	if err != nil {
		t.Fatalf("Failed to list rooms by host: %v", err)
	}

	if len(rooms) != 1 {
		t.Fatalf("Expected 1 room, got %d", len(rooms))
	}
	if rooms[0].GetHostID() != host.ID {
		t.Errorf("Expected host %s, got %s", host.ID, rooms[0].GetHostID())
	}
}
