package repository

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-demo/forum/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// 全域計數器確保唯一性
var testCounter int64

// GenerateUniquePrefix 生成唯一的測試前綴
// 使用 UUID 確保並行測試不會衝突
func GenerateUniquePrefix() string {
	count := atomic.AddInt64(&testCounter, 1)
	return uuid.New().String()[:8] + "_" + time.Now().Format("150405") + "_" + string(rune(count%26+'a'))
}

// SetupIsolatedTestDB 建立隔離的測試資料庫連線
// 每個測試使用唯一前綴，避免並行測試衝突
func SetupIsolatedTestDB(t *testing.T) (*sqlx.DB, string) {
	t.Helper()

	dsn := "host=localhost port=5432 user=postgres password=postgres dbname=forum_test sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Skipping test, could not connect to test database: %v", err)
	}

	// 生成此測試的唯一前綴
	prefix := GenerateUniquePrefix()

	return db, prefix
}

// CleanupTestDataByPrefix 清理特定前綴的測試資料
// 只清理本測試建立的資料，不影響其他測試
func CleanupTestDataByPrefix(t *testing.T, db *sqlx.DB, prefix string) {
	t.Helper()

	ctx := context.Background()

	// 按照外鍵依賴順序刪除
	_, _ = db.ExecContext(ctx, "DELETE FROM messages WHERE body LIKE $1", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM messages WHERE user_id IN (SELECT id FROM users WHERE username LIKE $1)", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM room_participants WHERE user_id IN (SELECT id FROM users WHERE username LIKE $1)", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM rooms WHERE host_id IN (SELECT id FROM users WHERE username LIKE $1)", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM rooms WHERE name LIKE $1", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM topics WHERE name LIKE $1", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM users WHERE username LIKE $1", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM users WHERE email LIKE $1", prefix+"%")
}

// CreateIsolatedTestUser 建立隔離的測試用戶
func CreateIsolatedTestUser(t *testing.T, db *sqlx.DB, prefix, name string) *model.User {
	t.Helper()

	userRepo := NewUserRepository(db)
	username := prefix + "_" + name
	user := &model.User{
		Username:     username,
		Email:        username + "@test.example.com",
		PasswordHash: "hashedpassword",
	}

	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateIsolatedTestTopic 建立隔離的測試主題
func CreateIsolatedTestTopic(t *testing.T, db *sqlx.DB, prefix, name string) *model.Topic {
	t.Helper()

	topicRepo := NewTopicRepository(db)
	topic, err := topicRepo.GetOrCreate(context.Background(), prefix+"_"+name)
	if err != nil {
		t.Fatalf("Failed to create test topic: %v", err)
	}

	return topic
}

// CreateIsolatedTestRoom 建立隔離的測試討論室
func CreateIsolatedTestRoom(t *testing.T, db *sqlx.DB, prefix string, host *model.User, topic *model.Topic) *model.Room {
	t.Helper()

	roomRepo := NewRoomRepository(db)
	room := &model.Room{
		HostID: sql.NullString{String: host.ID, Valid: true},
		Name:   prefix + "_room",
	}
	if topic != nil {
		room.TopicID = sql.NullString{String: topic.ID, Valid: true}
	}

	if err := roomRepo.Create(context.Background(), room); err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}

	return room
}

// CreateIsolatedTestMessage 建立隔離的測試訊息
func CreateIsolatedTestMessage(t *testing.T, db *sqlx.DB, prefix string, user *model.User, room *model.Room, body string) *model.Message {
	t.Helper()

	messageRepo := NewMessageRepository(db)
	msg := &model.Message{
		UserID: user.ID,
		RoomID: room.ID,
		Body:   prefix + "_" + body,
	}

	if err := messageRepo.Create(context.Background(), msg); err != nil {
		t.Fatalf("Failed to create test message: %v", err)
	}

	return msg
}
