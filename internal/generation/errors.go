package generation

import (
	"errors"
	"fmt"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

// Common errors returned by the generation package and its LLM adapters
var (
	// ErrInvalidResponse is returned when the LLM response is empty or cannot be used
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// FailureKind classifies a failed generation attempt.
type FailureKind int

const (
	// FailureTransport means the LLM call itself failed.
	FailureTransport FailureKind = iota + 1
	// FailureValidation means the call succeeded but the answer was not
	// valid bilingual content.
	FailureValidation
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Attempt records the outcome of one failed generation attempt.
type Attempt struct {
	Number int
	Kind   FailureKind
	Err    error
}

// ExhaustedError is returned when every attempt in the retry budget failed.
//
// The message only embeds the cause when the final attempt was a transport
// failure. Callers that need to tell the two cases apart should use
// errors.Is with domain.ErrUpstreamTransport or domain.ErrValidationExhausted,
// or inspect Attempts.
type ExhaustedError struct {
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	last := e.Last()
	if last.Kind == FailureTransport {
		return fmt.Sprintf("failed to generate proper bilingual content after %d attempts: %v",
			len(e.Attempts), last.Err)
	}
	return fmt.Sprintf("failed to generate properly formatted bilingual content after %d attempts",
		len(e.Attempts))
}

// Unwrap exposes the sentinel matching the final attempt's kind together
// with that attempt's own error.
func (e *ExhaustedError) Unwrap() []error {
	last := e.Last()
	errs := make([]error, 0, 2)
	if last.Kind == FailureTransport {
		errs = append(errs, domain.ErrUpstreamTransport)
	} else {
		errs = append(errs, domain.ErrValidationExhausted)
	}
	if last.Err != nil {
		errs = append(errs, last.Err)
	}
	return errs
}

// Last returns the final attempt, or a zero Attempt when none were made.
func (e *ExhaustedError) Last() Attempt {
	if len(e.Attempts) == 0 {
		return Attempt{}
	}
	return e.Attempts[len(e.Attempts)-1]
}

// Count returns how many attempts failed with the given kind.
func (e *ExhaustedError) Count(kind FailureKind) int {
	n := 0
	for _, a := range e.Attempts {
		if a.Kind == kind {
			n++
		}
	}
	return n
}
