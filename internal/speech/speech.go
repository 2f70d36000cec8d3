package speech

import (
	"context"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

// Audio is an encoded audio clip.
type Audio struct {
	Data     []byte
	MIMEType string
}

// Synthesizer converts text to speech.
type Synthesizer interface {
	// Synthesize reads text aloud in the given language.
	Synthesize(ctx context.Context, text string, lang domain.Language) (Audio, error)
}

// Transcriber converts speech to text.
type Transcriber interface {
	// Transcribe returns the words spoken in audio, expected in lang.
	Transcribe(ctx context.Context, audio Audio, lang domain.Language) (string, error)
}
