package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSpeech(t *testing.T) (SpeechService, *MockSynthesizer, *MockTranscriber) {
	t.Helper()
	synth := new(MockSynthesizer)
	trans := new(MockTranscriber)
	svc, err := NewSpeechService(synth, trans, nil)
	require.NoError(t, err)
	return svc, synth, trans
}

func TestNewSpeechService_NilDependencies(t *testing.T) {
	_, err := NewSpeechService(nil, new(MockTranscriber), nil)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = NewSpeechService(new(MockSynthesizer), nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, domain.Hebrew, DetectLanguage("שלום עולם"))
	assert.Equal(t, domain.Arabic, DetectLanguage("مرحبا"))
	assert.Equal(t, domain.Arabic, DetectLanguage("שלום مرحبا"))
	assert.Equal(t, domain.Arabic, DetectLanguage("hello"))
}

func TestSpeechService_Speak(t *testing.T) {
	svc, synth, _ := newSpeech(t)
	audio := speech.Audio{Data: []byte("RIFF"), MIMEType: "audio/wav"}

	synth.On("Synthesize", mock.Anything, "שלום", domain.Hebrew).Return(audio, nil).Once()
	synth.On("Synthesize", mock.Anything, "مرحبا", domain.Arabic).Return(audio, nil).Once()

	got, err := svc.Speak(context.Background(), "<he>שלום</he>", "")
	require.NoError(t, err)
	assert.Equal(t, audio, got)

	got, err = svc.Speak(context.Background(), "مرحبا", domain.Arabic)
	require.NoError(t, err)
	assert.Equal(t, audio, got)
	synth.AssertExpectations(t)
}

func TestSpeechService_SpeakErrors(t *testing.T) {
	svc, synth, _ := newSpeech(t)

	_, err := svc.Speak(context.Background(), "  ", "")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = svc.Speak(context.Background(), "text", domain.Language("French"))
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)

	synth.On("Synthesize", mock.Anything, mock.Anything, mock.Anything).
		Return(speech.Audio{}, errors.New("quota exceeded")).Once()
	_, err = svc.Speak(context.Background(), "مرحبا", "")
	assert.ErrorIs(t, err, domain.ErrUpstreamTransport)
	synth.AssertNumberOfCalls(t, "Synthesize", 1)
}

func TestSpeechService_CheckRecitation(t *testing.T) {
	svc, _, trans := newSpeech(t)
	audio := speech.Audio{Data: []byte{1, 2, 3}, MIMEType: "audio/webm"}

	trans.On("Transcribe", mock.Anything, audio, domain.Arabic).Return("مرحبا صديقي", nil).Once()

	result, err := svc.CheckRecitation(context.Background(), audio, "مرحبا يا صديقي")
	require.NoError(t, err)
	assert.Equal(t, []string{"يا"}, result.MissedWords)
	assert.InDelta(t, 2.0/3.0, result.Score, 0.001)
	trans.AssertExpectations(t)
}

func TestSpeechService_CheckRecitationErrors(t *testing.T) {
	svc, _, trans := newSpeech(t)
	audio := speech.Audio{Data: []byte{1}, MIMEType: "audio/wav"}

	_, err := svc.CheckRecitation(context.Background(), audio, "")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = svc.CheckRecitation(context.Background(), speech.Audio{}, "مرحبا")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	trans.On("Transcribe", mock.Anything, audio, domain.Arabic).
		Return("", errors.New("deadline exceeded")).Once()
	_, err = svc.CheckRecitation(context.Background(), audio, "مرحبا")
	assert.ErrorIs(t, err, domain.ErrUpstreamTransport)
}
