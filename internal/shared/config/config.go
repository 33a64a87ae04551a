package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"dev"`
	CORSAllowOrigin []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	LLMProvider     string        `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMModel        string        `env:"LLM_MODEL"`
	LLMMaxTokens    int           `env:"LLM_MAX_TOKENS" envDefault:"2000"`
	LLMTemperature  float32       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string        `env:"OPENAI_BASE_URL"`
	OpenAITimeout   time.Duration `env:"OPENAI_TIMEOUT_SECONDS" envDefault:"120s"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
}

// Load reads configuration from .env files and environment variables with
// sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{FuncMap: durationSeconds}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// APIKey returns the server-side credential for the configured provider.
func (c Config) APIKey() string {
	if c.LLMProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

func (c *Config) normalize() {
	c.Env = normalizeEnv(c.Env)
	c.LLMProvider = normalizeProvider(c.LLMProvider)
	c.CORSAllowOrigin = trimAll(c.CORSAllowOrigin)
	c.LLMModel = strings.TrimSpace(c.LLMModel)
	c.OpenAIAPIKey = strings.TrimSpace(c.OpenAIAPIKey)
	c.GeminiAPIKey = strings.TrimSpace(c.GeminiAPIKey)
	if c.LLMMaxTokens <= 0 {
		c.LLMMaxTokens = 2000
	}
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

// OPENAI_TIMEOUT_SECONDS accepts a bare number of seconds as well as a Go duration.
var durationSeconds = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(time.Duration(0)): func(v string) (interface{}, error) {
		v = strings.TrimSpace(v)
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second, nil
		}
		return time.ParseDuration(v)
	},
}

func trimAll(raw []string) []string {
	var out []string
	for _, p := range raw {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "google":
		return "gemini"
	default:
		return "openai"
	}
}
