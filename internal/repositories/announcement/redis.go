package announcement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quadrosga/dndapp/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for Redis
	announcementsKey = "dndapp:announcements"
)

// Config holds configuration for the Redis announcement repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed announcement repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveAnnouncements persists the full announcement list to Redis as a single
// value, so the overwrite is atomic from the caller's perspective
func (r *redisRepository) SaveAnnouncements(ctx context.Context, input *SaveAnnouncementsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	announcements := input.Announcements
	if announcements == nil {
		announcements = []*models.Announcement{}
	}

	// Marshal the list to JSON
	announcementsJSON, err := json.Marshal(announcements)
	if err != nil {
		return fmt.Errorf("failed to marshal announcements: %w", err)
	}

	// Save the list
	if err := r.client.Set(ctx, announcementsKey, announcementsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save announcements: %w", err)
	}

	return nil
}

// GetAnnouncements retrieves the full announcement list from Redis. An
// absent key is an empty list, not an error
func (r *redisRepository) GetAnnouncements(ctx context.Context, input *GetAnnouncementsInput) (*GetAnnouncementsOutput, error) {
	announcementsJSON, err := r.client.Get(ctx, announcementsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetAnnouncementsOutput{
				Announcements: []*models.Announcement{},
			}, nil
		}
		return nil, fmt.Errorf("failed to get announcements: %w", err)
	}

	// Unmarshal the list from JSON
	var announcements []*models.Announcement
	if err := json.Unmarshal([]byte(announcementsJSON), &announcements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal announcements: %w", err)
	}

	if announcements == nil {
		announcements = []*models.Announcement{}
	}

	return &GetAnnouncementsOutput{
		Announcements: announcements,
	}, nil
}
