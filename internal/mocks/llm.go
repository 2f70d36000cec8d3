package mocks

import (
	"context"
	"sync"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
)

// AskCall records one call to MockLLM.Ask.
type AskCall struct {
	Prompt      string
	ShortAnswer bool
}

// MockLLM implements generation.LLM and generation.StructuredLLM.
type MockLLM struct {
	// AskFn overrides Ask. When nil, Ask pops the next entry of Answers.
	AskFn func(ctx context.Context, prompt string, shortAnswer bool) (string, error)

	// AskStructuredFn overrides AskStructured. When nil it behaves like Ask.
	AskStructuredFn func(ctx context.Context, prompt string, fields []string) (string, error)

	// Answers are returned in order by Ask when AskFn is nil. Once they run
	// out Ask returns Err.
	Answers []string
	Err     error

	mu    sync.Mutex
	calls []AskCall
}

var (
	_ generation.LLM           = (*MockLLM)(nil)
	_ generation.StructuredLLM = (*MockLLM)(nil)
)

// Ask implements generation.LLM.
func (m *MockLLM) Ask(ctx context.Context, prompt string, shortAnswer bool) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, AskCall{Prompt: prompt, ShortAnswer: shortAnswer})
	fn := m.AskFn
	if fn == nil {
		defer m.mu.Unlock()
		if len(m.Answers) == 0 {
			return "", m.Err
		}
		answer := m.Answers[0]
		m.Answers = m.Answers[1:]
		return answer, nil
	}
	m.mu.Unlock()
	return fn(ctx, prompt, shortAnswer)
}

// AskStructured implements generation.StructuredLLM.
func (m *MockLLM) AskStructured(ctx context.Context, prompt string, fields []string) (string, error) {
	if m.AskStructuredFn != nil {
		m.mu.Lock()
		m.calls = append(m.calls, AskCall{Prompt: prompt})
		m.mu.Unlock()
		return m.AskStructuredFn(ctx, prompt, fields)
	}
	return m.Ask(ctx, prompt, false)
}

// Calls returns a copy of the recorded calls.
func (m *MockLLM) Calls() []AskCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AskCall(nil), m.calls...)
}

// Prompts returns the prompts of the recorded calls.
func (m *MockLLM) Prompts() []string {
	calls := m.Calls()
	prompts := make([]string, len(calls))
	for i, c := range calls {
		prompts[i] = c.Prompt
	}
	return prompts
}
