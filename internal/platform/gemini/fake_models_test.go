package gemini

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"google.golang.org/genai"
)

// fakeModels records GenerateContent calls and returns a scripted response.
type fakeModels struct {
	mu sync.Mutex

	resp *genai.GenerateContentResponse
	err  error

	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	calls    int
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func (f *fakeModels) promptText() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.contents) == 0 || len(f.contents[0].Parts) == 0 {
		return ""
	}
	return f.contents[0].Parts[0].Text
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      genai.NewContentFromText(text, genai.RoleModel),
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
