package gemini

import (
	"context"
	"testing"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.LLMConfig)
		wantErr bool
	}{
		{name: "valid gemini api", modify: func(*config.LLMConfig) {}},
		{
			name:    "missing api key",
			modify:  func(c *config.LLMConfig) { c.GeminiAPIKey = "" },
			wantErr: true,
		},
		{
			name: "vertex without key",
			modify: func(c *config.LLMConfig) {
				c.Backend = config.BackendVertexAI
				c.GeminiAPIKey = ""
				c.Project = "proj"
				c.Location = "us-central1"
			},
		},
		{
			name: "vertex without project",
			modify: func(c *config.LLMConfig) {
				c.Backend = config.BackendVertexAI
				c.Location = "us-central1"
			},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			modify:  func(c *config.LLMConfig) { c.Backend = "openai" },
			wantErr: true,
		},
		{
			name:    "model not in allow-list",
			modify:  func(c *config.LLMConfig) { c.ModelName = "gpt-4o" },
			wantErr: true,
		},
		{
			name:    "empty model",
			modify:  func(c *config.LLMConfig) { c.ModelName = "" },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := testLLMConfig()
			tc.modify(&cfg)

			err := validateConfig(context.Background(), discardLogger(), cfg)
			if tc.wantErr {
				assert.ErrorIs(t, err, generation.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConnectRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), discardLogger(), config.LLMConfig{Backend: config.BackendGeminiAPI})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestModelAllowList(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAvailableModel("gemini-1.5-flash"))
	assert.False(t, IsAvailableModel("gemini-0.1"))
	assert.True(t, IsAvailableSpeechModel("gemini-2.5-flash-preview-tts"))
	assert.False(t, IsAvailableSpeechModel("gemini-2.0-flash"))
}
