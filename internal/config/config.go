package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds every tunable of the service. It is built once at startup and
// handed to each component explicitly.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	ModelProvider string
	OllamaBaseURL string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string

	// RankModel serves ranking, city suggestion and city validation.
	RankModel string
	// EnrichModel is the lighter model used for per-day tips.
	EnrichModel string

	DayCapacityHours   float64
	AttractionsPerCity int
	SuggestedCityCount int

	EnrichConcurrency   int
	ModelMaxConcurrency int
	ModelTimeout        time.Duration

	CORSAllowOrigins []string
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvWithDefault("PORT", "8000"),
		GinMode:  getEnvWithDefault("GIN_MODE", "debug"),
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),

		ModelProvider: strings.ToLower(getEnvWithDefault("MODEL_PROVIDER", ProviderOllama)),
		OllamaBaseURL: getEnvWithDefault("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),

		RankModel:   getEnvWithDefault("RANK_MODEL", "gemma3:1b"),
		EnrichModel: getEnvWithDefault("ENRICH_MODEL", "deepseek-r1:1.5b"),

		CORSAllowOrigins: splitList(getEnvWithDefault("CORS_ALLOW_ORIGINS", "*")),
	}

	var err error
	if cfg.DayCapacityHours, err = getFloat("DAY_CAPACITY_HOURS", 9); err != nil {
		return nil, err
	}
	if cfg.AttractionsPerCity, err = getInt("ATTRACTIONS_PER_CITY", 10); err != nil {
		return nil, err
	}
	if cfg.SuggestedCityCount, err = getInt("SUGGESTED_CITY_COUNT", 10); err != nil {
		return nil, err
	}
	if cfg.EnrichConcurrency, err = getInt("ENRICH_CONCURRENCY", 1); err != nil {
		return nil, err
	}
	if cfg.ModelMaxConcurrency, err = getInt("MODEL_MAX_CONCURRENCY", 4); err != nil {
		return nil, err
	}
	if cfg.ModelTimeout, err = getDuration("MODEL_TIMEOUT", 120*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Port:                "8000",
		GinMode:             "debug",
		LogLevel:            "info",
		ModelProvider:       ProviderOllama,
		OllamaBaseURL:       "http://localhost:11434/v1",
		RankModel:           "gemma3:1b",
		EnrichModel:         "deepseek-r1:1.5b",
		DayCapacityHours:    9,
		AttractionsPerCity:  10,
		SuggestedCityCount:  10,
		EnrichConcurrency:   1,
		ModelMaxConcurrency: 4,
		ModelTimeout:        120 * time.Second,
		CORSAllowOrigins:    []string{"*"},
	}
}

func (c *Config) Validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE: %s. Use 'debug', 'release' or 'test'", c.GinMode)
	}

	switch c.ModelProvider {
	case ProviderOllama:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using the openai provider")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when using the gemini provider")
		}
	default:
		return fmt.Errorf("unsupported model provider: %s. Use 'ollama', 'openai' or 'gemini'", c.ModelProvider)
	}

	if strings.TrimSpace(c.RankModel) == "" || strings.TrimSpace(c.EnrichModel) == "" {
		return fmt.Errorf("RANK_MODEL and ENRICH_MODEL must not be empty")
	}
	if c.DayCapacityHours <= 0 {
		return fmt.Errorf("DAY_CAPACITY_HOURS must be positive, got %v", c.DayCapacityHours)
	}
	if c.AttractionsPerCity < 1 {
		return fmt.Errorf("ATTRACTIONS_PER_CITY must be at least 1, got %d", c.AttractionsPerCity)
	}
	if c.SuggestedCityCount < 1 {
		return fmt.Errorf("SUGGESTED_CITY_COUNT must be at least 1, got %d", c.SuggestedCityCount)
	}
	if c.EnrichConcurrency < 1 {
		return fmt.Errorf("ENRICH_CONCURRENCY must be at least 1, got %d", c.EnrichConcurrency)
	}
	if c.ModelMaxConcurrency < 1 {
		return fmt.Errorf("MODEL_MAX_CONCURRENCY must be at least 1, got %d", c.ModelMaxConcurrency)
	}
	if c.ModelTimeout <= 0 {
		return fmt.Errorf("MODEL_TIMEOUT must be positive, got %s", c.ModelTimeout)
	}
	return nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
