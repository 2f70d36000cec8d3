package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/bilingual"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
)

// SpeechService reads text aloud and checks recited audio.
type SpeechService interface {
	// Speak synthesizes text. An empty lang is detected from the text.
	Speak(ctx context.Context, text string, lang domain.Language) (speech.Audio, error)

	// CheckRecitation transcribes audio and compares it to the expected text.
	CheckRecitation(ctx context.Context, audio speech.Audio, expected string) (speech.RecitationResult, error)
}

type speechServiceImpl struct {
	synthesizer speech.Synthesizer
	transcriber speech.Transcriber
	logger      *slog.Logger
}

// NewSpeechService creates a new SpeechService.
// It returns an error if any of the required dependencies are nil.
func NewSpeechService(
	synthesizer speech.Synthesizer,
	transcriber speech.Transcriber,
	logger *slog.Logger,
) (SpeechService, error) {
	if synthesizer == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "synthesizer cannot be nil",
			Err:       domain.ErrNotInitialized,
		}
	}
	if transcriber == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "transcriber cannot be nil",
			Err:       domain.ErrNotInitialized,
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &speechServiceImpl{
		synthesizer: synthesizer,
		transcriber: transcriber,
		logger:      logger.With("component", "speech_service"),
	}, nil
}

// Speak implements SpeechService. Bilingual tags are removed before
// synthesis.
func (s *speechServiceImpl) Speak(ctx context.Context, text string, lang domain.Language) (speech.Audio, error) {
	text = bilingual.Strip(text)
	if strings.TrimSpace(text) == "" {
		return speech.Audio{}, domain.ErrEmptyInput
	}
	if lang == "" {
		lang = DetectLanguage(text)
	}
	if !lang.Valid() {
		return speech.Audio{}, fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, string(lang))
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, lang)
	if err != nil {
		s.logger.ErrorContext(ctx, "speech synthesis failed", "error", err, "language", lang)
		return speech.Audio{}, NewServiceError("speak", "failed to synthesize speech", upstream(err))
	}

	s.logger.DebugContext(ctx, "speech synthesized",
		"language", lang,
		"bytes", len(audio.Data),
		"mime_type", audio.MIMEType)
	return audio, nil
}

// CheckRecitation implements SpeechService. The transcription language is
// detected from the expected text.
func (s *speechServiceImpl) CheckRecitation(
	ctx context.Context,
	audio speech.Audio,
	expected string,
) (speech.RecitationResult, error) {
	expected = bilingual.Strip(expected)
	if strings.TrimSpace(expected) == "" || len(audio.Data) == 0 {
		return speech.RecitationResult{}, domain.ErrEmptyInput
	}
	lang := DetectLanguage(expected)

	recognized, err := s.transcriber.Transcribe(ctx, audio, lang)
	if err != nil {
		s.logger.ErrorContext(ctx, "transcription failed", "error", err, "language", lang)
		return speech.RecitationResult{}, NewServiceError("check_recitation", "failed to transcribe audio", upstream(err))
	}

	result := speech.CompareRecitation(expected, recognized)
	s.logger.InfoContext(ctx, "recitation checked",
		"language", lang,
		"score", result.Score,
		"missed", len(result.MissedWords))
	return result, nil
}

// DetectLanguage picks the speech language for text: Hebrew when it contains
// Hebrew letters and no Arabic ones, Arabic otherwise.
func DetectLanguage(text string) domain.Language {
	if bilingual.HasHebrew(text) && !bilingual.HasArabic(text) {
		return domain.Hebrew
	}
	return domain.Arabic
}

func upstream(err error) error {
	if errors.Is(err, domain.ErrUpstreamTransport) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
}
