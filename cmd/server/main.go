package main

import (
	"context"
	"log"
	"net/http"

	_ "quizroom/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"quizroom/internal/auth"
	"quizroom/internal/cache"
	"quizroom/internal/codegen"
	"quizroom/internal/config"
	"quizroom/internal/db"
	"quizroom/internal/handler"
	"quizroom/internal/model"
	"quizroom/internal/repository"
	"quizroom/internal/router"
	"quizroom/internal/service"
)

// @title Quizroom API
// @version 1.0
// @description Multiplayer quiz backend: rooms with shareable codes, multiple-choice questions, live scoring and leaderboards.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Guest{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unreachable at %s, token revocation degraded: %v", cfg.RedisAddr, err)
	}

	// Repositories. Room reads go through a short-lived Redis cache; every
	// write invalidates it.
	userRepo := repository.NewUserRepository(gormDB)
	roomRepo := repository.NewCachedRoomRepository(repository.NewRoomRepository(gormDB), cacheClient)
	guestRepo := repository.NewGuestRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services. Room and score services share one lock table so every
	// room document write is serialized per code.
	locks := service.NewRoomLocks()
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	roomService := service.NewRoomService(roomRepo, userRepo, guestRepo, codegen.CryptoGenerator{}, locks)
	scoreService := service.NewScoreService(roomRepo, locks)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	questionHandler := handler.NewQuestionHandler(roomService)
	gameHandler := handler.NewGameHandler(roomService, scoreService)

	router.Register(e, authService, authHandler, roomHandler, questionHandler, gameHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
