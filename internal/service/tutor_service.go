package service

import (
	"context"
	"log/slog"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
)

// ContentGenerator produces bilingual content for a conversation.
// generation.Generator satisfies it.
type ContentGenerator interface {
	Generate(ctx context.Context, conv domain.Conversation, input string) (generation.Result, domain.Conversation, error)
}

// TutorService runs bilingual study conversations.
type TutorService interface {
	// Converse answers input within the given session and records both turns
	// in its history. An empty session id selects the default session.
	Converse(ctx context.Context, sessionID, input string) (generation.Result, error)

	// StartSession creates a new empty session.
	StartSession(ctx context.Context) (string, error)

	// History returns the turns recorded for a session.
	History(ctx context.Context, sessionID string) (domain.Conversation, error)

	// EndSession discards a session's history.
	EndSession(ctx context.Context, sessionID string) error
}

type tutorServiceImpl struct {
	generator ContentGenerator
	sessions  SessionStore
	logger    *slog.Logger
}

// NewTutorService creates a new TutorService.
// It returns an error if any of the required dependencies are nil.
func NewTutorService(generator ContentGenerator, sessions SessionStore, logger *slog.Logger) (TutorService, error) {
	if generator == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
			Err:       domain.ErrNotInitialized,
		}
	}
	if sessions == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "session store cannot be nil",
			Err:       domain.ErrNotInitialized,
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &tutorServiceImpl{
		generator: generator,
		sessions:  sessions,
		logger:    logger.With("component", "tutor_service"),
	}, nil
}

// Converse implements TutorService.
func (s *tutorServiceImpl) Converse(ctx context.Context, sessionID, input string) (generation.Result, error) {
	conv, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return generation.Result{}, NewServiceError("converse", "failed to load session", err)
	}

	result, updated, err := s.generator.Generate(ctx, conv, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "bilingual generation failed",
			"error", err,
			"session_id", sessionID,
			"history_turns", conv.Len())
		return generation.Result{}, NewServiceError("converse", "failed to generate content", err)
	}

	if err := s.sessions.Save(ctx, sessionID, updated); err != nil {
		return generation.Result{}, NewServiceError("converse", "failed to save session", err)
	}

	s.logger.DebugContext(ctx, "conversation advanced",
		"session_id", sessionID,
		"attempts", result.Attempts,
		"auto_tagged", result.AutoTagged,
		"segments", len(result.Segments))
	return result, nil
}

// StartSession implements TutorService.
func (s *tutorServiceImpl) StartSession(ctx context.Context) (string, error) {
	id, err := s.sessions.Create(ctx)
	if err != nil {
		return "", NewServiceError("start_session", "failed to create session", err)
	}
	s.logger.InfoContext(ctx, "session started", "session_id", id)
	return id, nil
}

// History implements TutorService.
func (s *tutorServiceImpl) History(ctx context.Context, sessionID string) (domain.Conversation, error) {
	conv, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Conversation{}, NewServiceError("history", "failed to load session", err)
	}
	return conv, nil
}

// EndSession implements TutorService.
func (s *tutorServiceImpl) EndSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return NewServiceError("end_session", "failed to delete session", err)
	}
	s.logger.InfoContext(ctx, "session ended", "session_id", sessionID)
	return nil
}
