package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret-change-me"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	// AuthLatency is the simulated upstream round trip applied to every
	// async auth operation. Zero disables it.
	AuthLatency time.Duration `env:"AUTH_LATENCY, default=1s"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`

	// SessionBackend selects where the session is persisted:
	// file (default), redis, or memory (nothing survives a restart).
	SessionBackend string `env:"SESSION_BACKEND, default=file"`
	StateDir       string `env:"STATE_DIR,       default=.skywanderer"`

	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=2"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
