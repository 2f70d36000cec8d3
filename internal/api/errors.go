package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/lexicon"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/service"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownLanguage),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound

	// The model refused the request
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Upstream errors
	case errors.Is(err, domain.ErrValidationExhausted),
		errors.Is(err, domain.ErrUpstreamTransport),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, domain.ErrNotInitialized):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for err that reveals no
// internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, lexicon.ErrNotSingleWord):
		return "Please provide exactly one word"
	case errors.Is(err, domain.ErrEmptyInput):
		return "Input cannot be empty"
	case errors.Is(err, domain.ErrUnknownLanguage):
		return "Unsupported language"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid input"
	case errors.Is(err, service.ErrSessionNotFound):
		return "Conversation session not found"
	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by the model's safety filters"
	case errors.Is(err, domain.ErrValidationExhausted):
		return "Failed to generate bilingual content"
	case errors.Is(err, domain.ErrUpstreamTransport),
		errors.Is(err, generation.ErrInvalidResponse):
		return "The language service is unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out"
	case errors.Is(err, domain.ErrNotInitialized):
		return "Service is not ready"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the mapped status and safe message for err and logs
// the redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// SanitizeValidationError turns a validator error into a message naming the
// failing field without exposing struct names.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example: "Key: 'GenerateRequest.Input' Error:Field validation for 'Input' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := strings.ToLower(fieldParts[1])
				if len(fieldParts) >= 5 {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fieldParts[3]))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "dive":
		return "invalid item"
	default:
		return "validation failed"
	}
}
