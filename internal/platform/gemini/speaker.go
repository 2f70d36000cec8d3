package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
	"google.golang.org/genai"
)

var _ speech.Synthesizer = (*Speaker)(nil)

// Speaker reads text aloud with a Gemini speech model.
type Speaker struct {
	logger *slog.Logger
	models modelsAPI
	model  string
	voices map[domain.Language]string
}

// NewSpeaker creates a Speaker on top of a connected genai client.
func NewSpeaker(logger *slog.Logger, gc *genai.Client, cfg config.SpeechConfig) (*Speaker, error) {
	if gc == nil || gc.Models == nil {
		return nil, fmt.Errorf("%w: gemini client is not connected", domain.ErrNotInitialized)
	}
	return newSpeaker(logger, gc.Models, cfg)
}

func newSpeaker(logger *slog.Logger, models modelsAPI, cfg config.SpeechConfig) (*Speaker, error) {
	if err := validateSpeechConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Speaker{
		logger: logger.With("component", "gemini_speaker", "model", cfg.TTSModel),
		models: models,
		model:  cfg.TTSModel,
		voices: map[domain.Language]string{
			domain.Hebrew: cfg.HebrewVoice,
			domain.Arabic: cfg.ArabicVoice,
		},
	}, nil
}

// Synthesize returns text spoken in lang as WAV audio.
func (s *Speaker) Synthesize(ctx context.Context, text string, lang domain.Language) (speech.Audio, error) {
	if strings.TrimSpace(text) == "" {
		return speech.Audio{}, domain.ErrEmptyInput
	}
	voice, ok := s.voices[lang]
	if !ok {
		return speech.Audio{}, fmt.Errorf("%w: no voice for %q", domain.ErrUnknownLanguage, lang)
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}
	prompt := fmt.Sprintf("Read the following %s text aloud:\n%s", lang, text)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := s.models.GenerateContent(ctx, s.model, contents, cfg)
	if err != nil {
		s.logger.ErrorContext(ctx, "speech synthesis failed", "error", err, "language", lang)
		return speech.Audio{}, mapCallError(err)
	}

	blob, err := responseAudio(resp)
	if err != nil {
		return speech.Audio{}, err
	}

	audio := speech.AsWAV(speech.Audio{Data: blob.Data, MIMEType: blob.MIMEType})
	s.logger.DebugContext(ctx, "speech synthesized",
		"language", lang,
		"voice", voice,
		"bytes", len(audio.Data),
		"mime_type", audio.MIMEType)

	return audio, nil
}
