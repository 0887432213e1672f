// Package config loads process configuration from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=8080"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// JWTSecret has no default on purpose: starting with an empty signing
	// secret must fail loudly, never fall back to a constant.
	JWTSecret string `env:"JWT_SECRET, required"`

	PlacesAPIKey string `env:"PLACES_API_KEY"`

	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=marketplace"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SeedConfig holds the bootstrap admin credentials. The defaults are a
// standing credential: rotate them in any real deployment.
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@marketplace.local"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=changeme-now"`
}

// Load reads configuration from environment variables using go-envconfig.
// It panics when a required variable is missing so misconfiguration is
// caught before the server binds.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
