package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizroom/internal/codegen"
	"quizroom/internal/config"
	"quizroom/internal/db"
	"quizroom/internal/model"
	"quizroom/internal/repository"
	"quizroom/internal/service"
)

const (
	demoOwnerName     = "Demo Host"
	demoOwnerEmail    = "host@quizroom.local"
	demoOwnerPassword = "letmein1"
	demoRoomName      = "General Knowledge"
)

var demoQuestions = []model.Question{
	{
		Text:    "Which planet is known as the Red Planet?",
		Answers: map[string]string{"a": "Venus", "b": "Mars", "c": "Jupiter", "d": "Mercury"},
		Correct: "b",
		Point:   100,
		Time:    15,
	},
	{
		Text:    "What is the largest ocean on Earth?",
		Answers: map[string]string{"a": "Atlantic", "b": "Indian", "c": "Pacific", "d": "Arctic"},
		Correct: "c",
		Point:   100,
		Time:    15,
	},
	{
		Text:    "Which language does the gopher mascot belong to?",
		Answers: map[string]string{"a": "Rust", "b": "Python", "c": "Java", "d": "Go"},
		Correct: "d",
		Point:   200,
		Time:    10,
	},
}

// Seeds a demo host user and a demo room with sample questions for local
// development.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Room{}, &model.Guest{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	roomRepo := repository.NewRoomRepository(gormDB)
	guestRepo := repository.NewGuestRepository(gormDB)

	roomService := service.NewRoomService(roomRepo, userRepo, guestRepo, codegen.CryptoGenerator{}, service.NewRoomLocks())

	owner, err := userRepo.FindByEmail(ctx, demoOwnerEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up demo user: %v", err)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoOwnerPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		owner = &model.User{
			Name:         demoOwnerName,
			Email:        demoOwnerEmail,
			PasswordHash: string(hashed),
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoOwnerEmail)
	} else {
		log.Printf("Demo user %s already exists", owner.Email)
	}

	room, err := roomService.CreateRoom(ctx, demoRoomName, demoOwnerName, demoOwnerEmail)
	if err != nil {
		log.Fatalf("Failed to create demo room: %v", err)
	}

	for _, q := range demoQuestions {
		if _, err := roomService.AddQuestion(ctx, room.Code, q); err != nil {
			log.Fatalf("Failed to add demo question: %v", err)
		}
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Demo login: %s / %s", demoOwnerEmail, demoOwnerPassword)
	log.Printf("  - Demo room code: %s (%d questions)", room.Code, len(demoQuestions))
}
