// Package service provides the application-level services for tutoring,
// dialog practice and speech.
package service

import (
	"errors"
	"fmt"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrSessionNotFound indicates that a conversation session does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("conversation session not found")

	// ErrEmptyConversation indicates that a dialog operation received no
	// non-blank lines. It wraps domain.ErrEmptyInput.
	ErrEmptyConversation = fmt.Errorf("%w: conversation has no lines", domain.ErrEmptyInput)
)

// ServiceError wraps errors from a service operation with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "converse", "explain_word")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// It returns ErrSessionNotFound directly without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
