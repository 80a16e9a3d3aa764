package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP HTTPConfig `env-prefix:"HTTP_"`
	Log  LogConfig  `env-prefix:"LOG_"`

	// PreviewLength is how many runes of a note's content the list page shows.
	PreviewLength int `env:"PREVIEW_LENGTH" env-default:"120"`
}

type HTTPConfig struct {
	Addr              string        `env:"ADDR" env-default:":5000"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" env-default:"5s"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type LogConfig struct {
	Level       string `env:"LEVEL" env-default:"info"`
	Development bool   `env:"DEVELOPMENT" env-default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("HTTP_ADDR is required")
	}
	if c.PreviewLength <= 0 {
		return errors.New("PREVIEW_LENGTH must be positive")
	}
	return nil
}
