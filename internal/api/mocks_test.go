package api

import (
	"context"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
	"github.com/stretchr/testify/mock"
)

// MockTutorService is a mock implementation of service.TutorService
type MockTutorService struct {
	mock.Mock
}

func (m *MockTutorService) Converse(ctx context.Context, sessionID, input string) (generation.Result, error) {
	args := m.Called(ctx, sessionID, input)
	result, _ := args.Get(0).(generation.Result)
	return result, args.Error(1)
}

func (m *MockTutorService) StartSession(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTutorService) History(ctx context.Context, sessionID string) (domain.Conversation, error) {
	args := m.Called(ctx, sessionID)
	conv, _ := args.Get(0).(domain.Conversation)
	return conv, args.Error(1)
}

func (m *MockTutorService) EndSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockDialogService is a mock implementation of service.DialogService
type MockDialogService struct {
	mock.Mock
}

func (m *MockDialogService) ExplainSentence(
	ctx context.Context,
	conv domain.Conversation,
	sentence, question string,
) (string, domain.Conversation, error) {
	args := m.Called(ctx, conv, sentence, question)
	updated, _ := args.Get(1).(domain.Conversation)
	return args.String(0), updated, args.Error(2)
}

func (m *MockDialogService) ExplainConversation(ctx context.Context, lines []string) (string, error) {
	args := m.Called(ctx, lines)
	return args.String(0), args.Error(1)
}

func (m *MockDialogService) TranslateConversation(ctx context.Context, lines []string) (string, error) {
	args := m.Called(ctx, lines)
	return args.String(0), args.Error(1)
}

func (m *MockDialogService) ContinueConversation(ctx context.Context, lines []string) (string, error) {
	args := m.Called(ctx, lines)
	return args.String(0), args.Error(1)
}

func (m *MockDialogService) AnswerConversation(ctx context.Context, conv domain.Conversation) (string, error) {
	args := m.Called(ctx, conv)
	return args.String(0), args.Error(1)
}

func (m *MockDialogService) ExplainWord(ctx context.Context, word string) (domain.WordAnalysis, error) {
	args := m.Called(ctx, word)
	analysis, _ := args.Get(0).(domain.WordAnalysis)
	return analysis, args.Error(1)
}

// MockSpeechService is a mock implementation of service.SpeechService
type MockSpeechService struct {
	mock.Mock
}

func (m *MockSpeechService) Speak(ctx context.Context, text string, lang domain.Language) (speech.Audio, error) {
	args := m.Called(ctx, text, lang)
	audio, _ := args.Get(0).(speech.Audio)
	return audio, args.Error(1)
}

func (m *MockSpeechService) CheckRecitation(
	ctx context.Context,
	audio speech.Audio,
	expected string,
) (speech.RecitationResult, error) {
	args := m.Called(ctx, audio, expected)
	result, _ := args.Get(0).(speech.RecitationResult)
	return result, args.Error(1)
}

// MockGeneratorStub is a mock implementation of service.ContentGenerator
type MockGeneratorStub struct {
	mock.Mock
}

func (m *MockGeneratorStub) Generate(
	ctx context.Context,
	conv domain.Conversation,
	input string,
) (generation.Result, domain.Conversation, error) {
	args := m.Called(ctx, conv, input)
	result, _ := args.Get(0).(generation.Result)
	updated, _ := args.Get(1).(domain.Conversation)
	return result, updated, args.Error(2)
}
