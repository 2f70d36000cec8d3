package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/auth/credentials"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
	"google.golang.org/genai"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Connect validates cfg and creates the shared genai client.
//
// The Gemini API backend authenticates with the API key. The Vertex AI
// backend uses the service-account file in cfg.CredentialsFile when set and
// application default credentials otherwise.
func Connect(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*genai.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	if cfg.Backend == config.BackendVertexAI {
		clientConfig = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  cfg.Project,
			Location: cfg.Location,
		}

		if cfg.CredentialsFile != "" {
			creds, err := credentials.DetectDefault(&credentials.DetectOptions{
				Scopes:          []string{cloudPlatformScope},
				CredentialsFile: cfg.CredentialsFile,
			})
			if err != nil {
				return nil, fmt.Errorf("%w: failed to load service account credentials: %v",
					generation.ErrInvalidConfig, err)
			}
			clientConfig.Credentials = creds
		}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini client created",
		"backend", cfg.Backend,
		"model", cfg.ModelName)

	return client, nil
}
