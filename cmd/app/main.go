package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/quadrosga/dndapp/internal/common/clock"
	"github.com/quadrosga/dndapp/internal/common/uuid"
	"github.com/quadrosga/dndapp/internal/config"
	"github.com/quadrosga/dndapp/internal/handlers/cli"
	"github.com/quadrosga/dndapp/internal/logging"
	announcementRepo "github.com/quadrosga/dndapp/internal/repositories/announcement"
	sessionRepo "github.com/quadrosga/dndapp/internal/repositories/session"
	userRepo "github.com/quadrosga/dndapp/internal/repositories/user"
	announcementService "github.com/quadrosga/dndapp/internal/services/announcement"
	authService "github.com/quadrosga/dndapp/internal/services/auth"
	sessionService "github.com/quadrosga/dndapp/internal/services/session"
)

func main() {
	// A local .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessRepo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	annRepo, err := announcementRepo.NewRedis(&announcementRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create announcement repository: %v", err)
	}

	usrRepo, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	// Initialize services
	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo: sessRepo,
		Clock:       &clock.DefaultClock{},
		UUID:        uuid.New(),
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	announcementSvc, err := announcementService.New(&announcementService.Config{
		AnnouncementRepo: annRepo,
		Clock:            &clock.DefaultClock{},
		UUID:             uuid.New(),
		Logger:           logger,
	})
	if err != nil {
		log.Fatalf("Failed to create announcement service: %v", err)
	}

	authSvc, err := authService.New(&authService.Config{
		UserRepo:  usrRepo,
		Directory: authService.NewStaticDirectory(),
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	// Initialize the terminal app
	app, err := cli.New(&cli.Config{
		AuthService:         authSvc,
		SessionService:      sessionSvc,
		AnnouncementService: announcementSvc,
		In:                  os.Stdin,
		Out:                 os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Interrupts cancel the context so in-flight Redis calls unwind
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("App exited with error: %v", err)
	}
}
