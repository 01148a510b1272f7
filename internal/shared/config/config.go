package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	OpenAIAPIKey string
	LLMModel     string
	LLMTimeout   time.Duration
	Env          string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env")

	return Config{
		OpenAIAPIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		LLMModel:     getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		LLMTimeout:   timeoutSeconds("OPENAI_TIMEOUT_SECONDS", 120*time.Second),
		Env:          normalizeEnv(getEnv("ENV", "dev")),
	}
}

// HasCredential reports whether an API key is configured. The key itself
// must never be logged or echoed.
func (c Config) HasCredential() bool {
	return c.OpenAIAPIKey != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func timeoutSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
