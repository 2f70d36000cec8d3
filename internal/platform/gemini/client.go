package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
	"google.golang.org/genai"
)

var (
	_ generation.LLM           = (*Client)(nil)
	_ generation.StructuredLLM = (*Client)(nil)
)

// Client answers text prompts with a Gemini model.
type Client struct {
	logger      *slog.Logger
	models      modelsAPI
	model       string
	temperature float32
	timeout     time.Duration
}

// NewClient creates a Client on top of a connected genai client.
func NewClient(logger *slog.Logger, gc *genai.Client, cfg config.LLMConfig) (*Client, error) {
	if gc == nil || gc.Models == nil {
		return nil, fmt.Errorf("%w: gemini client is not connected", domain.ErrNotInitialized)
	}
	return newClient(logger, gc.Models, cfg)
}

func newClient(logger *slog.Logger, models modelsAPI, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &Client{
		logger:      logger.With("component", "gemini_client", "model", cfg.ModelName),
		models:      models,
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
		timeout:     cfg.RequestTimeout,
	}, nil
}

// Ask sends prompt to the model and returns its text answer. In short-answer
// mode the model is asked to answer concisely.
func (c *Client) Ask(ctx context.Context, prompt string, shortAnswer bool) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.ErrEmptyInput
	}
	if shortAnswer {
		prompt = prompt + "\n" + ShortAnswerSuffix
	}

	return c.generate(ctx, prompt, c.baseConfig())
}

// AskStructured asks for a JSON object whose properties are the given string
// fields. Every field is optional so the model can omit what does not apply.
func (c *Client) AskStructured(ctx context.Context, prompt string, fields []string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.ErrEmptyInput
	}

	properties := make(map[string]*genai.Schema, len(fields))
	for _, f := range fields {
		properties[f] = &genai.Schema{Type: genai.TypeString}
	}

	cfg := c.baseConfig()
	cfg.ResponseMIMEType = "application/json"
	cfg.ResponseSchema = &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       properties,
		PropertyOrdering: fields,
	}

	return c.generate(ctx, prompt, cfg)
}

func (c *Client) baseConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if c.temperature > 0 {
		cfg.Temperature = genai.Ptr(c.temperature)
	}
	return cfg
}

func (c *Client) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if c == nil || c.models == nil {
		return "", fmt.Errorf("%w: gemini client is not connected", domain.ErrNotInitialized)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return "", mapCallError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		c.logger.WarnContext(ctx, "Gemini response unusable", "error", err)
		return "", err
	}

	c.logger.DebugContext(ctx, "Gemini API call successful",
		"prompt_length", len(prompt),
		"response_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}
