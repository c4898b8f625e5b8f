package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultSecretKey = "dev-secret-key-change-me"

type Config struct {
	SecretKey       string    `env:"SECRET_KEY" envDefault:"dev-secret-key-change-me"`
	DBPath          string    `env:"DB_PATH" envDefault:"app.db"`
	Port            int       `env:"PORT" envDefault:"5000"`
	SessionTTLHours int       `env:"SESSION_TTL_HOURS" envDefault:"72"`
	Log             LogConfig `envPrefix:"LOG_"`
}

type LogConfig struct {
	File      string `env:"FILE"`
	Level     string `env:"LEVEL" envDefault:"info"`
	FileCount int    `env:"FILE_COUNT" envDefault:"5"`
	FileSize  int    `env:"FILE_SIZE" envDefault:"50"`
	KeepDays  int    `env:"KEEP_DAYS" envDefault:"7"`
	Console   bool   `env:"CONSOLE" envDefault:"true"`
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}
	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = 72
	}
	return &cfg, nil
}

// InsecureSecret reports whether the session signing key is still the
// development default, which must not be used in production.
func (c *Config) InsecureSecret() bool {
	return c.SecretKey == DefaultSecretKey
}
