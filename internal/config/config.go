package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog"
)

// Config holds the environment driven configuration for the image generation service.
type Config struct {
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"imagegen-api"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort         int           `env:"HTTP_PORT" envDefault:"8187"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`
	EnableTracing    bool          `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	LogPromptLevel   string        `env:"LOG_PROMPT_LEVEL" envDefault:"hashed"`

	// Upstream image provider. A missing key is reported per request, not at startup.
	OpenAIAPIKey         string        `env:"OPENAI_API_KEY"`
	OpenAIAPIKeyParam    string        `env:"OPENAI_API_KEY_PARAM"`
	OpenAIBaseURL        string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIImageModel     string        `env:"OPENAI_IMAGE_MODEL" envDefault:"dall-e-3"`
	OpenAIRequestTimeout time.Duration `env:"OPENAI_REQUEST_TIMEOUT" envDefault:"2m"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present, loaded by cmd/server)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be json or console", cfg.LogFormat)
	}

	cfg.LogPromptLevel = strings.ToLower(strings.TrimSpace(cfg.LogPromptLevel))
	switch cfg.LogPromptLevel {
	case "none", "hashed", "full":
	default:
		return nil, fmt.Errorf("invalid LOG_PROMPT_LEVEL %q: must be none, hashed or full", cfg.LogPromptLevel)
	}

	baseURL, err := url.Parse(cfg.OpenAIBaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid OPENAI_BASE_URL %q", cfg.OpenAIBaseURL)
	}
	cfg.OpenAIBaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")

	if cfg.OpenAIRequestTimeout < 0 {
		return nil, fmt.Errorf("OPENAI_REQUEST_TIMEOUT must not be negative")
	}

	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
