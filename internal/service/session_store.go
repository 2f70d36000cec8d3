package service

import (
	"context"
	"sync"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/google/uuid"
)

// DefaultSessionID names the session used when a caller does not supply one.
// It always exists and is reset rather than removed by Delete.
const DefaultSessionID = "default"

// SessionStore keeps conversation histories keyed by session id.
type SessionStore interface {
	// Create starts a new empty session and returns its id.
	Create(ctx context.Context) (string, error)

	// Get returns the history of a session.
	Get(ctx context.Context, id string) (domain.Conversation, error)

	// Save replaces the history of an existing session.
	Save(ctx context.Context, id string, conv domain.Conversation) error

	// Delete removes a session. Deleting the default session empties it.
	Delete(ctx context.Context, id string) error
}

// MemorySessionStore is a SessionStore held in process memory.
// Concurrent saves to the same session are last-writer-wins.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Conversation
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty store holding only the default session.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: map[string]domain.Conversation{DefaultSessionID: {}},
	}
}

// Create implements SessionStore.
func (s *MemorySessionStore) Create(_ context.Context) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = domain.Conversation{}
	return id, nil
}

// Get implements SessionStore. An empty id selects the default session.
func (s *MemorySessionStore) Get(_ context.Context, id string) (domain.Conversation, error) {
	id = sessionKey(id)

	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.sessions[id]
	if !ok {
		return domain.Conversation{}, ErrSessionNotFound
	}
	return conv, nil
}

// Save implements SessionStore. An empty id selects the default session.
func (s *MemorySessionStore) Save(_ context.Context, id string, conv domain.Conversation) error {
	id = sessionKey(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	s.sessions[id] = conv
	return nil
}

// Delete implements SessionStore.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	id = sessionKey(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	if id == DefaultSessionID {
		s.sessions[id] = domain.Conversation{}
		return nil
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of sessions, including the default one.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func sessionKey(id string) string {
	if id == "" {
		return DefaultSessionID
	}
	return id
}
