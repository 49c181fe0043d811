package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// LLM
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai" validate:"oneof=openai"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	LLMModel    string `env:"LLM_MODEL" envDefault:"gpt-4o" validate:"required"`

	// Cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"memory" validate:"oneof=memory none"`

	// Classification retries
	ClassifyAttempts int           `env:"CLASSIFY_ATTEMPTS" envDefault:"3" validate:"min=1,max=10"`
	ClassifyBackoff  time.Duration `env:"CLASSIFY_BACKOFF" envDefault:"200ms"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks enum and range constraints. The API key is deliberately not
// validated here: only runs that actually reach the classifier need it, and
// the app wiring enforces that before any request is made.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
