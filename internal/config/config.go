package config

import "time"

// Supported LLM backends.
const (
	BackendGeminiAPI = "gemini_api"
	BackendVertexAI  = "vertex_ai"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm" validate:"required"`
	Speech     SpeechConfig     `mapstructure:"speech" validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// CORSAllowedOrigins lists the origins allowed to call the API. "*" allows all.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"min=1,dive,required"`
	// MaxUploadBytes caps multipart audio uploads.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Backend      string `mapstructure:"backend" validate:"required,oneof=gemini_api vertex_ai"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Backend gemini_api"`
	// CredentialsFile is a service-account JSON file for the Vertex AI backend.
	// Application default credentials are used when it is empty.
	CredentialsFile string        `mapstructure:"credentials_file"`
	Project         string        `mapstructure:"project" validate:"required_if=Backend vertex_ai"`
	Location        string        `mapstructure:"location" validate:"required_if=Backend vertex_ai"`
	ModelName       string        `mapstructure:"model_name" validate:"required"`
	Temperature     float32       `mapstructure:"temperature" validate:"gte=0,lte=2"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

// SpeechConfig contains text-to-speech and speech-to-text settings.
type SpeechConfig struct {
	TTSModel    string `mapstructure:"tts_model" validate:"required"`
	STTModel    string `mapstructure:"stt_model" validate:"required"`
	HebrewVoice string `mapstructure:"hebrew_voice" validate:"required"`
	ArabicVoice string `mapstructure:"arabic_voice" validate:"required"`
}

// GenerationConfig contains the bilingual generation retry policy.
type GenerationConfig struct {
	MaxRetries  int           `mapstructure:"max_retries" validate:"gte=1,lte=10"`
	MinSegments int           `mapstructure:"min_segments" validate:"gte=1"`
	RetryDelay  time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
}
