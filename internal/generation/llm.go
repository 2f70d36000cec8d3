package generation

import "context"

// LLM is the boundary between the application core and an external language
// model. Implementations wrap transport failures with domain.ErrUpstreamTransport.
type LLM interface {
	// Ask sends a single prompt and returns the model's text answer. When
	// shortAnswer is set the model is asked to keep the answer brief.
	Ask(ctx context.Context, prompt string, shortAnswer bool) (string, error)
}

// StructuredLLM is an LLM that can also be constrained to answer with a JSON
// object holding exactly the given string fields.
type StructuredLLM interface {
	LLM

	AskStructured(ctx context.Context, prompt string, fields []string) (string, error)
}
