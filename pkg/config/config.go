package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	// Store selects the persistence backend: postgres or memory.
	Store string `envconfig:"STORE" default:"postgres"`

	DB struct {
		Host            string `envconfig:"HOST" default:"localhost"`
		Port            int    `envconfig:"PORT" default:"5432"`
		User            string `envconfig:"USER" default:"postgres"`
		Password        string `envconfig:"PASSWORD" default:"postgres"`
		Name            string `envconfig:"NAME" default:"shop"`
		SSLMode         string `envconfig:"SSL_MODE" default:"disable"`
		MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"10"`
		MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME" default:"300"`
		Migrate         bool   `envconfig:"MIGRATE" default:"true"`
	} `envconfig:"DB"`

	Dispatch struct {
		Policy string `envconfig:"POLICY" default:"fail-fast"`
	} `envconfig:"DISPATCH"`

	Notification struct {
		From      string `envconfig:"FROM" default:"no-reply@shop.local"`
		Recipient string `envconfig:"RECIPIENT" default:"sales@shop.local"`
	} `envconfig:"NOTIFICATION"`
}

func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch cfg.Store {
	case StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("load config: unknown store %q", cfg.Store)
	}

	if strings.TrimSpace(cfg.Notification.Recipient) == "" {
		return nil, fmt.Errorf("load config: NOTIFICATION_RECIPIENT must not be empty")
	}

	return &cfg, nil
}
