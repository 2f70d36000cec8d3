package generation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/bilingual"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

// DefaultMaxRetries is the retry budget used when Config.MaxRetries is unset.
const DefaultMaxRetries = 3

// Config controls the generation retry policy.
type Config struct {
	// MaxRetries is the total number of attempts before giving up.
	MaxRetries int

	// MinSegments is the minimum number of segments required per language.
	MinSegments int

	// RetryDelay is the base delay between attempts. Zero retries immediately.
	// Later attempts back off exponentially with jitter.
	RetryDelay time.Duration
}

// Result is an accepted generation.
type Result struct {
	// Text is the normalized tagged text appended to the conversation.
	Text string

	// Segments is Text parsed into language-tagged segments.
	Segments domain.TaggedDocument

	// Attempts is the number of attempts used, including the successful one.
	Attempts int

	// AutoTagged is set when the tags were retrofitted by the auto-tagger.
	AutoTagged bool
}

// Generator produces bilingual content from an LLM.
//
// A Generator holds no conversation state: history is passed into Generate
// and the updated history is returned. It is safe for concurrent use.
type Generator struct {
	llm    LLM
	logger *slog.Logger
	cfg    Config
	prompt *template.Template

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewGenerator creates a Generator that asks llm for content.
func NewGenerator(llm LLM, logger *slog.Logger, cfg Config) (*Generator, error) {
	if llm == nil {
		return nil, fmt.Errorf("%w: llm cannot be nil", domain.ErrNotInitialized)
	}
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: max retries cannot be negative", ErrInvalidConfig)
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.MinSegments < 1 {
		cfg.MinSegments = 1
	}
	if cfg.RetryDelay < 0 {
		return nil, fmt.Errorf("%w: retry delay cannot be negative", ErrInvalidConfig)
	}

	tmpl, err := parsePromptTemplate()
	if err != nil {
		return nil, err
	}

	return &Generator{
		llm:    llm,
		logger: logger.With("component", "bilingual_generator"),
		cfg:    cfg,
		prompt: tmpl,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Generate asks the LLM for bilingual content answering input in the context
// of conv.
//
// Each attempt is one LLM call. An answer that already holds tagged segments
// of both languages is accepted after whitespace normalization; otherwise the
// auto-tagger gets a chance to retrofit tags. Transport failures and unusable
// answers both consume an attempt. When the budget is spent Generate returns
// an *ExhaustedError and no content.
//
// On success the returned conversation is conv with input and the accepted
// text appended. On failure conv is returned unchanged.
func (g *Generator) Generate(
	ctx context.Context,
	conv domain.Conversation,
	input string,
) (Result, domain.Conversation, error) {
	if g == nil || g.llm == nil || g.prompt == nil {
		return Result{}, conv, fmt.Errorf("%w: generator has no language model", domain.ErrNotInitialized)
	}
	if strings.TrimSpace(input) == "" {
		return Result{}, conv, domain.ErrEmptyInput
	}

	prompt, err := g.buildPrompt(conv, input)
	if err != nil {
		return Result{}, conv, err
	}

	failed := make([]Attempt, 0, g.cfg.MaxRetries)
	for n := 1; n <= g.cfg.MaxRetries; n++ {
		if n > 1 {
			if err := g.wait(ctx, n-1); err != nil {
				return Result{}, conv, fmt.Errorf("generation cancelled after %d attempts: %w", len(failed), err)
			}
		}

		g.logger.DebugContext(ctx, "requesting bilingual content",
			"attempt", n,
			"max_attempts", g.cfg.MaxRetries,
			"prompt_length", len(prompt))

		raw, err := g.llm.Ask(ctx, prompt, false)
		if err != nil {
			g.logger.WarnContext(ctx, "bilingual generation attempt failed",
				"attempt", n,
				"kind", FailureTransport.String(),
				"error", err)
			failed = append(failed, Attempt{Number: n, Kind: FailureTransport, Err: err})
			continue
		}

		text, autoTagged, ok := g.validate(raw)
		if !ok {
			g.logger.WarnContext(ctx, "bilingual generation attempt failed",
				"attempt", n,
				"kind", FailureValidation.String(),
				"response_length", len(raw))
			failed = append(failed, Attempt{
				Number: n,
				Kind:   FailureValidation,
				Err:    fmt.Errorf("%w: response lacks tagged Hebrew and Arabic segments", ErrInvalidResponse),
			})
			continue
		}

		result := Result{
			Text:       text,
			Segments:   bilingual.Extract(text),
			Attempts:   n,
			AutoTagged: autoTagged,
		}
		g.logger.InfoContext(ctx, "bilingual content generated",
			"attempt", n,
			"segments", len(result.Segments),
			"auto_tagged", autoTagged)

		return result, conv.Append(input, text), nil
	}

	exhausted := &ExhaustedError{Attempts: failed}
	g.logger.ErrorContext(ctx, "bilingual generation exhausted",
		"attempts", len(failed),
		"transport_failures", exhausted.Count(FailureTransport),
		"validation_failures", exhausted.Count(FailureValidation))
	return Result{}, conv, exhausted
}

// validate accepts raw when it already holds enough tagged segments of both
// languages, and otherwise tries the auto-tagger.
func (g *Generator) validate(raw string) (text string, autoTagged bool, ok bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false, false
	}

	normalized := bilingual.NormalizeWhitespace(raw)
	if bilingual.Extract(normalized).IsBilingual(g.cfg.MinSegments) {
		return normalized, false, true
	}

	tagged, ok := bilingual.AutoTag(raw)
	if !ok || !bilingual.Extract(tagged).IsBilingual(g.cfg.MinSegments) {
		return "", false, false
	}
	return bilingual.NormalizeWhitespace(tagged), true, true
}

// wait sleeps before the next attempt. The delay grows as
// RetryDelay * 2^(retry-1) * jitter, with jitter in [0.5, 1.0).
func (g *Generator) wait(ctx context.Context, retry int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.cfg.RetryDelay == 0 {
		return nil
	}

	g.rngMu.Lock()
	jitter := 0.5 + g.rng.Float64()*0.5
	g.rngMu.Unlock()

	backoff := float64(g.cfg.RetryDelay) * math.Pow(2, float64(retry-1)) * jitter
	timer := time.NewTimer(time.Duration(backoff))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
