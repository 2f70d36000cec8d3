package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
)

// validateConfig checks the settings Connect and NewClient depend on.
//
// Parameters:
//   - ctx: Context for logging
//   - logger: Logger for recording validation results
//   - cfg: The LLM configuration to validate
//
// Returns:
//   - An error wrapping generation.ErrInvalidConfig if validation fails, nil otherwise
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	switch cfg.Backend {
	case config.BackendGeminiAPI, "":
		if cfg.GeminiAPIKey == "" {
			logger.ErrorContext(ctx, "Missing API key for Gemini API backend")
			return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
		}
	case config.BackendVertexAI:
		if cfg.Project == "" || cfg.Location == "" {
			logger.ErrorContext(ctx, "Missing project or location for Vertex AI backend",
				"project_set", cfg.Project != "",
				"location_set", cfg.Location != "")
			return fmt.Errorf("%w: vertex AI backend needs a project and a location", generation.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}

	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if !IsAvailableModel(cfg.ModelName) {
		logger.ErrorContext(ctx, "Unsupported model configured",
			"model", cfg.ModelName,
			"available", AvailableModels)
		return fmt.Errorf("%w: model %q is not one of the available models", generation.ErrInvalidConfig, cfg.ModelName)
	}

	if cfg.Temperature < 0 {
		logger.WarnContext(ctx, "Invalid temperature value",
			"value", cfg.Temperature,
			"action", "using model default")
	}

	return nil
}

// validateSpeechConfig checks the speech model and voice settings.
func validateSpeechConfig(cfg config.SpeechConfig) error {
	if !IsAvailableSpeechModel(cfg.TTSModel) {
		return fmt.Errorf("%w: speech model %q is not one of the available speech models",
			generation.ErrInvalidConfig, cfg.TTSModel)
	}
	if cfg.HebrewVoice == "" || cfg.ArabicVoice == "" {
		return fmt.Errorf("%w: a voice is needed for both Hebrew and Arabic", generation.ErrInvalidConfig)
	}
	return nil
}

// validateTranscriberConfig checks the speech-to-text model setting.
func validateTranscriberConfig(cfg config.SpeechConfig) error {
	if !IsAvailableModel(cfg.STTModel) {
		return fmt.Errorf("%w: transcription model %q is not one of the available models",
			generation.ErrInvalidConfig, cfg.STTModel)
	}
	return nil
}
