package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

//go:embed prompts/bilingual.tmpl
var bilingualTemplate string

// maxPromptSegments caps how many tagged segments the model is asked for.
const maxPromptSegments = 3

type promptData struct {
	History     string
	Input       string
	MaxSegments int
}

func parsePromptTemplate() (*template.Template, error) {
	tmpl, err := template.New("bilingual").Parse(bilingualTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}
	return tmpl, nil
}

// buildPrompt renders the enhanced generation prompt for input, prefixed by
// the conversation transcript when there is one.
func (g *Generator) buildPrompt(conv domain.Conversation, input string) (string, error) {
	data := promptData{
		History:     conv.Transcript(),
		Input:       input,
		MaxSegments: maxPromptSegments,
	}

	var buf bytes.Buffer
	if err := g.prompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
