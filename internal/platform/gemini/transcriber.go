package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
	"google.golang.org/genai"
)

var _ speech.Transcriber = (*Transcriber)(nil)

// Transcriber turns recorded speech into text with a Gemini model.
type Transcriber struct {
	logger *slog.Logger
	models modelsAPI
	model  string
}

// NewTranscriber creates a Transcriber on top of a connected genai client.
func NewTranscriber(logger *slog.Logger, gc *genai.Client, cfg config.SpeechConfig) (*Transcriber, error) {
	if gc == nil || gc.Models == nil {
		return nil, fmt.Errorf("%w: gemini client is not connected", domain.ErrNotInitialized)
	}
	return newTranscriber(logger, gc.Models, cfg)
}

func newTranscriber(logger *slog.Logger, models modelsAPI, cfg config.SpeechConfig) (*Transcriber, error) {
	if err := validateTranscriberConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transcriber{
		logger: logger.With("component", "gemini_transcriber", "model", cfg.STTModel),
		models: models,
		model:  cfg.STTModel,
	}, nil
}

// Transcribe returns the words spoken in audio. The transcript is written in
// the script of lang and is not translated.
func (t *Transcriber) Transcribe(ctx context.Context, audio speech.Audio, lang domain.Language) (string, error) {
	if len(audio.Data) == 0 {
		return "", domain.ErrEmptyInput
	}
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, lang)
	}
	mimeType := audio.MIMEType
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	instruction := fmt.Sprintf(
		"Transcribe this recording of spoken %s (%s) word for word. "+
			"Answer with the transcript only, in %s script, without translation or commentary.",
		lang, lang.Code(), lang)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(audio.Data, mimeType),
		}, genai.RoleUser),
	}

	resp, err := t.models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		t.logger.ErrorContext(ctx, "transcription failed", "error", err, "language", lang)
		return "", mapCallError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	t.logger.DebugContext(ctx, "audio transcribed",
		"language", lang,
		"audio_bytes", len(audio.Data),
		"transcript_length", len(text))
	return text, nil
}
