package service

import (
	"context"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of ContentGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(
	ctx context.Context,
	conv domain.Conversation,
	input string,
) (generation.Result, domain.Conversation, error) {
	args := m.Called(ctx, conv, input)
	result, _ := args.Get(0).(generation.Result)
	updated, _ := args.Get(1).(domain.Conversation)
	return result, updated, args.Error(2)
}

// MockLLM is a mock implementation of generation.LLM
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Ask(ctx context.Context, prompt string, shortAnswer bool) (string, error) {
	args := m.Called(ctx, prompt, shortAnswer)
	return args.String(0), args.Error(1)
}

// MockWordAnalyzer is a mock implementation of WordAnalyzer
type MockWordAnalyzer struct {
	mock.Mock
}

func (m *MockWordAnalyzer) Analyze(ctx context.Context, word string) (domain.WordAnalysis, error) {
	args := m.Called(ctx, word)
	analysis, _ := args.Get(0).(domain.WordAnalysis)
	return analysis, args.Error(1)
}

// MockSynthesizer is a mock implementation of speech.Synthesizer
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string, lang domain.Language) (speech.Audio, error) {
	args := m.Called(ctx, text, lang)
	audio, _ := args.Get(0).(speech.Audio)
	return audio, args.Error(1)
}

// MockTranscriber is a mock implementation of speech.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio speech.Audio, lang domain.Language) (string, error) {
	args := m.Called(ctx, audio, lang)
	return args.String(0), args.Error(1)
}
