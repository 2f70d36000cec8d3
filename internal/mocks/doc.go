// Package mocks provides centralized mock implementations for testing.
//
// The mocks use function fields rather than expectation recording, so a test
// sets only the behavior it cares about:
//
//	llm := &mocks.MockLLM{
//	    AskFn: func(ctx context.Context, prompt string, short bool) (string, error) {
//	        return "<he>שלום</he> <ar>سلام</ar>", nil
//	    },
//	}
//
// Every mock records its calls and is safe for concurrent use.
package mocks
