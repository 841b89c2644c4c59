package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"MoneyMap"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"moneymap"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Ingest struct {
		BatchSize int `envconfig:"INGEST_BATCH_SIZE" default:"10000"`
		// CategoriesFile overrides the built-in taxonomy (JSON or YAML).
		CategoriesFile string `envconfig:"CATEGORIES_FILE"`
	}

	Cache struct {
		TTL  time.Duration `envconfig:"CACHE_TTL" default:"1h"`
		Size int           `envconfig:"CACHE_SIZE" default:"32"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Ingest.BatchSize <= 0 {
		return nil, fmt.Errorf("INGEST_BATCH_SIZE must be positive, got %d", cfg.Ingest.BatchSize)
	}

	return &cfg, nil
}
