package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/quadrosga/dndapp/internal/common/clock"
	"github.com/quadrosga/dndapp/internal/common/uuid"
	"github.com/quadrosga/dndapp/internal/config"
	"github.com/quadrosga/dndapp/internal/logging"
	announcementRepo "github.com/quadrosga/dndapp/internal/repositories/announcement"
	sessionRepo "github.com/quadrosga/dndapp/internal/repositories/session"
	announcementService "github.com/quadrosga/dndapp/internal/services/announcement"
	sessionService "github.com/quadrosga/dndapp/internal/services/session"
)

// seed loads the demo data into Redis without starting the app. With
// -reset it wipes the stored lists first so the demo data is rewritten.
func main() {
	reset := flag.Bool("reset", false, "wipe stored sessions and announcements before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	if *reset {
		if err := redisClient.Del(ctx, "dndapp:sessions", "dndapp:announcements").Err(); err != nil {
			log.Fatalf("Failed to wipe stored data: %v", err)
		}
		log.Println("Wiped stored sessions and announcements")
	}

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

	sessions, err := sessionSvc.SeedDemoSessions(ctx, &sessionService.SeedDemoSessionsInput{})
	if err != nil {
		log.Fatalf("Failed to seed sessions: %v", err)
	}
	if sessions.Seeded {
		log.Println("Seeded demo sessions")
	} else {
		log.Println("Sessions already present, skipped")
	}

	announcements, err := announcementSvc.SeedDemoAnnouncements(ctx, &announcementService.SeedDemoAnnouncementsInput{})
	if err != nil {
		log.Fatalf("Failed to seed announcements: %v", err)
	}
	if announcements.Seeded {
		log.Println("Seeded demo announcements")
	} else {
		log.Println("Announcements already present, skipped")
	}
}
