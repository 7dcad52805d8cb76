// Package config provides environment-based configuration for the server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Provider names accepted in LLM_PROVIDER
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// ServerConfig holds process-wide settings read once at startup.
type ServerConfig struct {
	Port        int
	DatabaseURL string // optional; resume routes are disabled when empty

	LLMProvider string
	APIKey      string // credential for LLMProvider; checked by llm.NewClient

	LogLevel  string
	LogFormat string

	AllowedOrigin string
}

// NewServerConfig reads PORT (default 8080), DATABASE_URL, LLM_PROVIDER (default gemini),
// the provider credential, LOG_LEVEL, LOG_FORMAT and CORS_ALLOWED_ORIGIN.
func NewServerConfig() (*ServerConfig, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	cfg := &ServerConfig{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}
	cfg.APIKey = APIKeyFor(cfg.LLMProvider)

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// APIKeyFor returns the credential environment value for a provider.
// GOOGLE_AI_API_KEY is accepted as an alias of GEMINI_API_KEY.
func APIKeyFor(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("GOOGLE_AI_API_KEY")
	}
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	switch c.LLMProvider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q (expected %s or %s)", c.LLMProvider, ProviderGemini, ProviderAnthropic)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
