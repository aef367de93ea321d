package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	BaseURL        string        `env:"LISTINGS_API_URL,   default=https://api.iwacu250.com"`
	RequestTimeout time.Duration `env:"LISTINGS_TIMEOUT,   default=15s"`
	LogLevel       string        `env:"LOG_LEVEL,          default=info"`
	LoginRoute     string        `env:"LOGIN_ROUTE,        default=/login"`
	MaxImageMB     int64         `env:"MAX_IMAGE_MB,       default=5"`
	MaxVideoMB     int64         `env:"MAX_VIDEO_MB,       default=50"`

	Session SessionConfig
}

type SessionConfig struct {
	// Backend selects where the session is persisted: "file" or "redis".
	Backend string `env:"SESSION_BACKEND, default=file"`
	// Path is the session file location for the file backend. Empty means
	// $HOME/.listings/session.json.
	Path string `env:"SESSION_FILE"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
