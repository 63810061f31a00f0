// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings needed to run the app.
type Config struct {
	// RedisAddr is the address of the local key-value store.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the optional password for the key-value store.
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`

	// RedisDB is the Redis database number.
	RedisDB int `env:"REDIS_DB" envDefault:"0"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
