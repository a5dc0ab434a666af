// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string          `env:"APP_ENV" envDefault:"development"`
	Server    ServerConfig    `envPrefix:"SERVER_"`
	Database  DatabaseConfig  `envPrefix:"DB_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Kafka     KafkaConfig     `envPrefix:"KAFKA_"`
	JWT       JWTConfig       `envPrefix:"JWT_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type DatabaseConfig struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	User        string `env:"USER" envDefault:"postgres"`
	Password    string `env:"PASSWORD"`
	Name        string `env:"NAME" envDefault:"go_leave"`
	Port        string `env:"PORT" envDefault:"5432"`
	SSLMode     string `env:"SSLMODE" envDefault:"disable"`
	MaxRetries  int    `env:"MAX_RETRIES" envDefault:"5"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
}

type RedisConfig struct {
	Addr           string        `env:"ADDR" envDefault:"localhost:6379"`
	SettingsTTL    time.Duration `env:"SETTINGS_TTL" envDefault:"5m"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
}

type KafkaConfig struct {
	Broker       string        `env:"BROKER"`
	GroupID      string        `env:"GROUP_ID" envDefault:"go-leave-audit"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"3s"`
	BatchSize    int           `env:"BATCH_SIZE" envDefault:"50"`
}

type JWTConfig struct {
	Secret string `env:"SECRET"`
}

type RateLimitConfig struct {
	ApplyPerSecond float64 `env:"APPLY_PER_SECOND" envDefault:"1"`
	ApplyBurst     int     `env:"APPLY_BURST" envDefault:"5"`
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Kafka.BatchSize <= 0 {
		return fmt.Errorf("KAFKA_BATCH_SIZE must be positive, got %d", c.Kafka.BatchSize)
	}
	if c.RateLimit.ApplyPerSecond <= 0 || c.RateLimit.ApplyBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_APPLY_PER_SECOND and RATE_LIMIT_APPLY_BURST must be positive")
	}
	return nil
}

// RequireJWT fails when the API is started without a signing secret.
func (c Config) RequireJWT() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// RequireKafka fails when a binary that talks to the broker has none configured.
func (c Config) RequireKafka() error {
	if c.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}
