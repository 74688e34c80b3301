package main

import (
	"context"
	"log"
	"net/http"

	"mentorgo/backend/internal/api/handler"
	"mentorgo/backend/internal/calls"
	"mentorgo/backend/internal/chathub"
	"mentorgo/backend/internal/config"
	"mentorgo/backend/internal/matching"
	"mentorgo/backend/internal/models"
	"mentorgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the storage layer maps to conflicts.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Match{},
		&models.Message{},
		&models.CallRequest{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting MentorGo Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	hub := chathub.NewManagerService(s)
	matchSvc := matching.NewService(s)
	callSvc := calls.NewService(s)

	go hub.Run()
	go hub.RunPubSub()

	r := gin.Default()
	h := handler.NewHandler(hub, s, matchSvc, callSvc, cfg.JWTSecret)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    config.HTTPReadTimeout,
		WriteTimeout:   config.HTTPWriteWait,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
