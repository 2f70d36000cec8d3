package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "LINGO"

var defaults = map[string]any{
	"server.port":                 8080,
	"server.log_level":            "info",
	"server.read_timeout":         "15s",
	"server.write_timeout":        "120s",
	"server.idle_timeout":         "60s",
	"server.shutdown_timeout":     "10s",
	"server.cors_allowed_origins": []string{"*"},
	"server.max_upload_bytes":     10 << 20,

	"llm.backend":         BackendGeminiAPI,
	"llm.location":        "us-central1",
	"llm.model_name":      "gemini-2.0-flash",
	"llm.temperature":     0.7,
	"llm.request_timeout": "60s",

	"speech.tts_model":    "gemini-2.5-flash-preview-tts",
	"speech.stt_model":    "gemini-2.0-flash",
	"speech.hebrew_voice": "Kore",
	"speech.arabic_voice": "Puck",

	"generation.max_retries":  3,
	"generation.min_segments": 1,
	"generation.retry_delay":  "0s",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded into the environment first,
// without overriding variables that are already set.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to Unmarshal unless bound explicitly.
	bindings := map[string][]string{
		"llm.gemini_api_key":   {"LINGO_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"llm.credentials_file": {"LINGO_LLM_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS"},
		"llm.project":          {"LINGO_LLM_PROJECT", "GOOGLE_CLOUD_PROJECT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
