package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quadrosga/dndapp/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Keys for Redis
	currentUserKey   = "dndapp:current_user"
	savedUsernameKey = "dndapp:saved_username"
)

// ErrNoCurrentUser is returned when no user is logged in
var ErrNoCurrentUser = errors.New("no current user")

// ErrNoSavedUsername is returned when no login name was remembered
var ErrNoSavedUsername = errors.New("no saved username")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
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

// SaveCurrentUser persists the logged-in user to Redis
func (r *redisRepository) SaveCurrentUser(ctx context.Context, input *SaveCurrentUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	// Marshal the user to JSON
	userJSON, err := json.Marshal(input.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// Save the user
	if err := r.client.Set(ctx, currentUserKey, userJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save current user: %w", err)
	}

	return nil
}

// GetCurrentUser retrieves the logged-in user from Redis
func (r *redisRepository) GetCurrentUser(ctx context.Context, input *GetCurrentUserInput) (*models.User, error) {
	userJSON, err := r.client.Get(ctx, currentUserKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoCurrentUser
		}
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	// Unmarshal the user from JSON
	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal current user: %w", err)
	}

	return &user, nil
}

// ClearCurrentUser removes the logged-in user from Redis. Clearing an
// already absent key is not an error
func (r *redisRepository) ClearCurrentUser(ctx context.Context, input *ClearCurrentUserInput) error {
	if err := r.client.Del(ctx, currentUserKey).Err(); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}

	return nil
}

// SaveUsername persists the remembered login name to Redis
func (r *redisRepository) SaveUsername(ctx context.Context, input *SaveUsernameInput) error {
	if input == nil || input.Username == "" {
		return errors.New("input and username cannot be empty")
	}

	if err := r.client.Set(ctx, savedUsernameKey, input.Username, 0).Err(); err != nil {
		return fmt.Errorf("failed to save username: %w", err)
	}

	return nil
}

// GetSavedUsername retrieves the remembered login name from Redis
func (r *redisRepository) GetSavedUsername(ctx context.Context, input *GetSavedUsernameInput) (string, error) {
	username, err := r.client.Get(ctx, savedUsernameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNoSavedUsername
		}
		return "", fmt.Errorf("failed to get saved username: %w", err)
	}

	return username, nil
}

// ClearSavedUsername removes the remembered login name from Redis. Clearing
// an already absent key is not an error
func (r *redisRepository) ClearSavedUsername(ctx context.Context, input *ClearSavedUsernameInput) error {
	if err := r.client.Del(ctx, savedUsernameKey).Err(); err != nil {
		return fmt.Errorf("failed to clear saved username: %w", err)
	}

	return nil
}
