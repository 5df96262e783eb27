// Package config loads the runtime configuration for the content generator.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Environment variables consulted by Load.
const (
	envAPIKey   = "GROQ_API_KEY"
	envAPIURL   = "GROQ_API_URL"
	envModel    = "GROQ_MODEL"
	envTimeout  = "GROQ_HTTP_TIMEOUT"
	envLogLevel = "LOG_LEVEL"
)

// Defaults applied when the environment leaves a value unset.
const (
	defaultAPIURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel    = "llama-3.3-70b-versatile"
	defaultTimeout  = "30s"
	defaultLogLevel = "info"
)

// Config holds the function configuration. It is loaded once at cold start
// and injected into the components that need it. The API key must never be
// logged.
type Config struct {
	APIKey   string        `mapstructure:"api_key"`
	APIURL   string        `mapstructure:"api_url"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
}

// Load reads the configuration from the environment, applies defaults, and
// validates the result.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api_key", "")
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("model", defaultModel)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("log_level", defaultLogLevel)

	bindings := map[string]string{
		"api_key":   envAPIKey,
		"api_url":   envAPIURL,
		"model":     envModel,
		"timeout":   envTimeout,
		"log_level": envLogLevel,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if cfg.APIKey == "" {
		return nil, errors.New("groq api key is required")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	return &cfg, nil
}
