package session

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
	sessionsKey            = "dndapp:sessions"
	confirmationsKeyPrefix = "dndapp:confirmations:"
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// SaveSessions persists the full session list to Redis as a single value,
// so the overwrite is atomic from the caller's perspective
func (r *redisRepository) SaveSessions(ctx context.Context, input *SaveSessionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	sessions := input.Sessions
	if sessions == nil {
		sessions = []*models.Session{}
	}

	// Marshal the list to JSON
	sessionsJSON, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	// Save the list
	if err := r.client.Set(ctx, sessionsKey, sessionsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}

	return nil
}

// GetSessions retrieves the full session list from Redis. An absent key is
// an empty list, not an error
func (r *redisRepository) GetSessions(ctx context.Context, input *GetSessionsInput) (*GetSessionsOutput, error) {
	sessionsJSON, err := r.client.Get(ctx, sessionsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetSessionsOutput{
				Sessions: []*models.Session{},
			}, nil
		}
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	// Unmarshal the list from JSON
	var sessions []*models.Session
	if err := json.Unmarshal([]byte(sessionsJSON), &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
	}

	if sessions == nil {
		sessions = []*models.Session{}
	}

	return &GetSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SaveConfirmation upserts one user's RSVP into the session's confirmation
// hash. The hash field is the user name, so two users confirming the same
// session keep separate records and a repeat confirmation by the same user
// overwrites their previous one
func (r *redisRepository) SaveConfirmation(ctx context.Context, input *SaveConfirmationInput) error {
	if input == nil || input.Confirmation == nil {
		return errors.New("input and confirmation cannot be nil")
	}

	confirmation := input.Confirmation

	if confirmation.SessionID == "" {
		return errors.New("confirmation session ID cannot be empty")
	}

	if confirmation.UserName == "" {
		return errors.New("confirmation user name cannot be empty")
	}

	// Marshal the confirmation to JSON
	confirmationJSON, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation: %w", err)
	}

	// Upsert the hash field for this user
	confirmationsKey := fmt.Sprintf("%s%s", confirmationsKeyPrefix, confirmation.SessionID)
	if err := r.client.HSet(ctx, confirmationsKey, confirmation.UserName, confirmationJSON).Err(); err != nil {
		return fmt.Errorf("failed to save confirmation: %w", err)
	}

	return nil
}

// GetConfirmations retrieves the RSVPs for the given sessions using a
// pipeline, one hash read per session
func (r *redisRepository) GetConfirmations(ctx context.Context, input *GetConfirmationsInput) (*GetConfirmationsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	confirmations := make(map[string][]*models.Confirmation, len(input.SessionIDs))

	// If there are no sessions, return an empty map
	if len(input.SessionIDs) == 0 {
		return &GetConfirmationsOutput{
			Confirmations: confirmations,
		}, nil
	}

	// Read all confirmation hashes in one round trip
	pipe := r.client.Pipeline()
	confirmationCommands := make(map[string]*redis.MapStringStringCmd, len(input.SessionIDs))

	for _, sessionID := range input.SessionIDs {
		confirmationsKey := fmt.Sprintf("%s%s", confirmationsKeyPrefix, sessionID)
		confirmationCommands[sessionID] = pipe.HGetAll(ctx, confirmationsKey)
	}

	// Execute the pipeline
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get confirmations: %w", err)
	}

	// Process the results
	for sessionID, cmd := range confirmationCommands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get confirmations for session %s: %w", sessionID, err)
		}

		records := make([]*models.Confirmation, 0, len(fields))
		for userName, confirmationJSON := range fields {
			var confirmation models.Confirmation
			if err := json.Unmarshal([]byte(confirmationJSON), &confirmation); err != nil {
				return nil, fmt.Errorf("failed to unmarshal confirmation for user %s: %w", userName, err)
			}
			records = append(records, &confirmation)
		}

		confirmations[sessionID] = records
	}

	return &GetConfirmationsOutput{
		Confirmations: confirmations,
	}, nil
}
