package mocks

import (
	"context"
	"sync"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
)

// MockSynthesizer implements speech.Synthesizer.
type MockSynthesizer struct {
	// SynthesizeFn overrides Synthesize. When nil, Audio and Err are returned.
	SynthesizeFn func(ctx context.Context, text string, lang domain.Language) (speech.Audio, error)

	Audio speech.Audio
	Err   error

	mu    sync.Mutex
	Texts []string
}

var _ speech.Synthesizer = (*MockSynthesizer)(nil)

// Synthesize implements speech.Synthesizer.
func (m *MockSynthesizer) Synthesize(ctx context.Context, text string, lang domain.Language) (speech.Audio, error) {
	m.mu.Lock()
	m.Texts = append(m.Texts, text)
	m.mu.Unlock()

	if m.SynthesizeFn != nil {
		return m.SynthesizeFn(ctx, text, lang)
	}
	return m.Audio, m.Err
}

// MockTranscriber implements speech.Transcriber.
type MockTranscriber struct {
	// TranscribeFn overrides Transcribe. When nil, Text and Err are returned.
	TranscribeFn func(ctx context.Context, audio speech.Audio, lang domain.Language) (string, error)

	Text string
	Err  error

	mu        sync.Mutex
	Languages []domain.Language
}

var _ speech.Transcriber = (*MockTranscriber)(nil)

// Transcribe implements speech.Transcriber.
func (m *MockTranscriber) Transcribe(ctx context.Context, audio speech.Audio, lang domain.Language) (string, error) {
	m.mu.Lock()
	m.Languages = append(m.Languages, lang)
	m.mu.Unlock()

	if m.TranscribeFn != nil {
		return m.TranscribeFn(ctx, audio, lang)
	}
	return m.Text, m.Err
}
