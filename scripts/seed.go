package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-demo/forum/internal/config"
	"github.com/go-demo/forum/internal/model"
	"github.com/go-demo/forum/internal/pkg/database"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/go-demo/forum/internal/repository"
	"go.uber.org/zap"
)

func main() {
	log.Println("Starting database seed...")

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	logger := zap.NewNop()
	db, err := database.NewPostgres(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Seed users
	log.Println("Creating users...")
	users := []struct {
		username string
		email    string
		password string
	}{
		{"alice", "alice@example.com", "password123"},
		{"bob", "bob@example.com", "password123"},
		{"charlie", "charlie@example.com", "password123"},
		{"diana", "diana@example.com", "password123"},
	}

	var createdUsers []*model.User
	for _, u := range users {
		hash, _ := utils.HashPassword(u.password)
		user := &model.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: hash,
		}

		if err := userRepo.Create(ctx, user); err != nil {
			log.Printf("User %s might already exist: %v", u.username, err)
			existing, _ := userRepo.GetByUsername(ctx, u.username)
			if existing != nil {
				createdUsers = append(createdUsers, existing)
			}
		} else {
			createdUsers = append(createdUsers, user)
			log.Printf("Created user: %s", u.username)
		}
	}

	if len(createdUsers) < 2 {
		log.Println("Not enough users, skipping room and message creation")
		return
	}

	// Seed topics
	log.Println("Creating topics...")
	topicNames := []string{"Golang", "Python", "資料庫", "前端開發"}
	topics := make(map[string]*model.Topic)
	for _, name := range topicNames {
		topic, err := topicRepo.GetOrCreate(ctx, name)
		if err != nil {
			log.Printf("Failed to create topic %s: %v", name, err)
			continue
		}
		topics[name] = topic
		log.Printf("Created topic: %s", name)
	}

	// Seed rooms
	log.Println("Creating rooms...")
	rooms := []struct {
		name        string
		description string
		topic       string
		hostIndex   int
	}{
		{"Go 新手村", "從零開始學 Go", "Golang", 0},
		{"Goroutine 實戰", "併發模式討論", "Golang", 1},
		{"Python 資料分析", "pandas 與 numpy 交流", "Python", 2},
		{"PostgreSQL 調校", "索引與查詢優化", "資料庫", 0},
		{"React 討論", "前端框架心得", "前端開發", 3},
	}

	var createdRooms []*model.Room
	for _, r := range rooms {
		if r.hostIndex >= len(createdUsers) {
			continue
		}

		host := createdUsers[r.hostIndex]
		room := &model.Room{
			HostID: sql.NullString{String: host.ID, Valid: true},
			Name:   r.name,
		}
		if topic, ok := topics[r.topic]; ok {
			room.TopicID = sql.NullString{String: topic.ID, Valid: true}
		}
		if r.description != "" {
			room.Description = sql.NullString{String: r.description, Valid: true}
		}

		if err := roomRepo.Create(ctx, room); err != nil {
			log.Printf("Failed to create room %s: %v", r.name, err)
			continue
		}
		createdRooms = append(createdRooms, room)
		log.Printf("Created room: %s", r.name)

		// The host joins their own room
		_ = roomRepo.AddParticipant(ctx, room.ID, host.ID)
	}

	// Seed messages
	log.Println("Creating messages...")
	messages := []struct {
		roomIndex int
		userIndex int
		body      string
	}{
		{0, 0, "大家好！歡迎來到 Go 新手村！"},
		{0, 1, "請問 slice 跟 array 差在哪裡？"},
		{0, 2, "slice 是動態的，底層還是 array"},
		{1, 1, "channel 跟 mutex 什麼時候該用哪個？"},
		{1, 0, "分享資料用 channel，保護狀態用 mutex"},
		{2, 2, "pandas 2.0 的 arrow backend 快很多"},
		{3, 0, "EXPLAIN ANALYZE 是你的好朋友"},
		{4, 3, "有人試過 React Server Components 嗎？"},
	}

	for _, m := range messages {
		if m.roomIndex >= len(createdRooms) || m.userIndex >= len(createdUsers) {
			continue
		}

		msg := &model.Message{
			RoomID: createdRooms[m.roomIndex].ID,
			UserID: createdUsers[m.userIndex].ID,
			Body:   m.body,
		}

		if err := messageRepo.Create(ctx, msg); err != nil {
			log.Printf("Failed to create message: %v", err)
			continue
		}

		// Posting makes the author a participant
		_ = roomRepo.AddParticipant(ctx, msg.RoomID, msg.UserID)
		log.Printf("Created message in %s", createdRooms[m.roomIndex].Name)

		// Small delay to ensure different timestamps
		time.Sleep(10 * time.Millisecond)
	}

	log.Println("Seed completed successfully!")
	fmt.Println("\n--- Test Accounts ---")
	fmt.Println("All accounts have password: password123")
	for _, u := range users {
		fmt.Printf("Username: %s, Email: %s\n", u.username, u.email)
	}
}
