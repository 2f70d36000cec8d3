// Package domain defines the core value types and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyInput is returned when a blank prompt, word or text is supplied.
	// It is always raised before any external call is made.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrNotInitialized is returned when an operation is invoked before the
	// model or its credentials were set up.
	ErrNotInitialized = errors.New("component not initialized")

	// ErrUpstreamTransport wraps any failure reported by the external LLM,
	// text-to-speech or speech-to-text service.
	ErrUpstreamTransport = errors.New("upstream service call failed")

	// ErrValidationExhausted is returned when every generation attempt reached
	// the model but none produced valid bilingual content.
	ErrValidationExhausted = errors.New("bilingual validation exhausted")

	// ErrMalformedUpstreamShape is returned when a structured model answer does
	// not match the expected shape. Callers degrade to a partial result.
	ErrMalformedUpstreamShape = errors.New("malformed upstream response shape")

	// ErrUnknownLanguage is returned when a language name or tag is not recognized.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrValidation is returned when a value fails validation.
	ErrValidation = errors.New("validation failed")
)
