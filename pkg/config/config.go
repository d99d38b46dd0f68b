package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apperrors "github.com/johnquangdev/fireflies-dl/errors"
	"github.com/johnquangdev/fireflies-dl/pkg/validator"
)

// Config holds application configuration
type Config struct {
	APIKey      string        `envconfig:"FIREFLIES_API_KEY"`
	BaseURL     string        `envconfig:"FIREFLIES_API_URL" default:"https://api.fireflies.ai/graphql" validate:"required,url"`
	HTTPTimeout time.Duration `envconfig:"FIREFLIES_HTTP_TIMEOUT" default:"30s"`
}

// Load loads configuration from environment variables, reading a .env
// file first when one is present.
func Load() (*Config, error) {
	// Ignore the error when no .env file exists
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, apperrors.ErrConfiguration(err)
	}
	if cfg.APIKey == "" {
		return nil, apperrors.ErrMissingConfig("FIREFLIES_API_KEY")
	}
	if err := validator.New().Validate(&cfg); err != nil {
		return nil, apperrors.ErrConfiguration(err)
	}
	return &cfg, nil
}
