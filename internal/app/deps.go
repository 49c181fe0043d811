package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"abstralyze/internal/cache"
	"abstralyze/internal/config"
	"abstralyze/internal/llm"
	"abstralyze/internal/logger"
)

// Deps bundles the runtime dependencies of one analysis run.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	LLM    llm.Client
	Cache  cache.Cache
}

// Options overrides parts of the environment configuration from the CLI.
type Options struct {
	// Model replaces LLM_MODEL when non-empty.
	Model string
}

// Build loads env, config, and shared components. A missing .env file is not
// an error; explicit environment variables always win anyway.
func Build(opts Options) (Deps, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Deps{}, fmt.Errorf("failed to load .env file: %w", err)
	}
	cfg := config.Load()
	if opts.Model != "" {
		cfg.LLMModel = opts.Model
	}
	if err := cfg.Validate(); err != nil {
		return Deps{}, err
	}
	log := logger.New(cfg.LogLevel)

	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return Deps{
		Config: cfg,
		Log:    log,
		LLM:    llmClient,
		Cache:  c,
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid option: openai)", cfg.LLMProvider)
	}
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "memory":
		return cache.NewMemory(), nil
	case "none":
		log.Info("classification caching disabled")
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: memory, none)", cfg.CacheProvider)
	}
}
