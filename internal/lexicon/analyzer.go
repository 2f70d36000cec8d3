package lexicon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
)

// ErrNotSingleWord is returned when the input holds more than one word.
var ErrNotSingleWord = fmt.Errorf("%w: input must be a single word", domain.ErrValidation)

// Analyzer explains single Arabic words.
type Analyzer struct {
	llm    generation.LLM
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer. If llm also implements
// generation.StructuredLLM, answers are requested as JSON objects.
func NewAnalyzer(llm generation.LLM, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{llm: llm, logger: logger.With("component", "word_analyzer")}
}

// Analyze asks the model for the meaning, root, stem, singular and plural of
// word. A malformed answer is logged and yields a partial analysis; only an
// unusable input or a failed model call returns an error.
func (a *Analyzer) Analyze(ctx context.Context, word string) (domain.WordAnalysis, error) {
	if a == nil || a.llm == nil {
		return domain.WordAnalysis{}, fmt.Errorf("%w: analyzer has no language model", domain.ErrNotInitialized)
	}

	word = strings.TrimSpace(word)
	if word == "" {
		return domain.WordAnalysis{}, domain.ErrEmptyInput
	}
	if len(strings.Fields(word)) > 1 {
		return domain.WordAnalysis{}, ErrNotSingleWord
	}

	prompt := wordPrompt(word)

	var (
		raw string
		err error
	)
	if structured, ok := a.llm.(generation.StructuredLLM); ok {
		raw, err = structured.AskStructured(ctx, prompt, Fields)
	} else {
		raw, err = a.llm.Ask(ctx, prompt, false)
	}
	if err != nil {
		if !errors.Is(err, domain.ErrUpstreamTransport) {
			err = fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
		}
		return domain.WordAnalysis{}, fmt.Errorf("failed to analyze word: %w", err)
	}

	analysis, err := Parse(raw)
	if err != nil {
		a.logger.WarnContext(ctx, "word analysis answer did not match expected shape",
			"error", err,
			"answer_length", len(raw))
	}
	analysis.Word = word

	if missing := analysis.Missing(); len(missing) > 0 {
		a.logger.DebugContext(ctx, "word analysis incomplete", "missing", missing)
	}
	return analysis, nil
}

func wordPrompt(word string) string {
	return fmt.Sprintf(`המילה בערבית: %s

ענה:

מה המשמעות שלה בעברית (בעברית),
מה השורש שלה (השורש כולו בערבית, לא להוסיף אם אין שורש),
מה הבניין שלה (הבניין כולו בערבית, לא להוסיף אם אין בניין),
מה צורת היחיד שלה (עם ניקוד, לא להוסיף אם אין צורת יחיד),
מה צורת הרבים שלה (עם ניקוד, לא להוסיף אם אין צורת רבים).
יש לשים לב שאם שדה כלשהו אינו אמור להיכתב, אין להוסיפו לתוצאה הסופית.
החזר אובייקט JSON עם המפתחות הבאים בלבד:
%s
`, word, strings.Join(Fields, ", "))
}
