package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
)

// WordAnalyzer explains single words. lexicon.Analyzer satisfies it.
type WordAnalyzer interface {
	Analyze(ctx context.Context, word string) (domain.WordAnalysis, error)
}

// DialogService provides single-shot helpers for practicing spoken Arabic
// with Hebrew explanations. None of its operations retry.
type DialogService interface {
	// ExplainSentence answers a question about an Arabic sentence in Hebrew
	// and returns conv with the question and answer appended.
	ExplainSentence(
		ctx context.Context,
		conv domain.Conversation,
		sentence, question string,
	) (string, domain.Conversation, error)

	// ExplainConversation explains a two-speaker Arabic conversation in Hebrew.
	ExplainConversation(ctx context.Context, lines []string) (string, error)

	// TranslateConversation translates a two-speaker Arabic conversation to Hebrew.
	TranslateConversation(ctx context.Context, lines []string) (string, error)

	// ContinueConversation produces the next Arabic sentence of a conversation.
	ContinueConversation(ctx context.Context, lines []string) (string, error)

	// AnswerConversation continues an accumulated dialog history with one
	// Arabic sentence followed by its Hebrew translation.
	AnswerConversation(ctx context.Context, conv domain.Conversation) (string, error)

	// ExplainWord returns the meaning, root, stem, singular and plural of a word.
	ExplainWord(ctx context.Context, word string) (domain.WordAnalysis, error)
}

type dialogServiceImpl struct {
	llm      generation.LLM
	analyzer WordAnalyzer
	logger   *slog.Logger
}

// NewDialogService creates a new DialogService.
// It returns an error if any of the required dependencies are nil.
func NewDialogService(llm generation.LLM, analyzer WordAnalyzer, logger *slog.Logger) (DialogService, error) {
	if llm == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "llm cannot be nil",
			Err:       domain.ErrNotInitialized,
		}
	}
	if analyzer == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "word analyzer cannot be nil",
			Err:       domain.ErrNotInitialized,
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &dialogServiceImpl{
		llm:      llm,
		analyzer: analyzer,
		logger:   logger.With("component", "dialog_service"),
	}, nil
}

// ExplainSentence implements DialogService.
func (s *dialogServiceImpl) ExplainSentence(
	ctx context.Context,
	conv domain.Conversation,
	sentence, question string,
) (string, domain.Conversation, error) {
	sentence, question = strings.TrimSpace(sentence), strings.TrimSpace(question)
	if sentence == "" || question == "" {
		return "", conv, domain.ErrEmptyInput
	}

	prompt := fmt.Sprintf("המשפט בערבית: %s  השאלה: %s ענה תשובה קצרה וקולעת", sentence, question)
	answer, err := s.ask(ctx, "explain_sentence", prompt, true)
	if err != nil {
		return "", conv, err
	}
	return answer, conv.Append(prompt, answer), nil
}

// ExplainConversation implements DialogService.
func (s *dialogServiceImpl) ExplainConversation(ctx context.Context, lines []string) (string, error) {
	script, err := speakerScript(lines)
	if err != nil {
		return "", err
	}
	prompt := "מלפניך שיחה בין שני אנשים, בבקשה תסביר את השיחה בעברית, " +
		"בלי לכתוב את ההסבר כשיחה. השיחה: " + script
	return s.ask(ctx, "explain_conversation", prompt, false)
}

// TranslateConversation implements DialogService.
func (s *dialogServiceImpl) TranslateConversation(ctx context.Context, lines []string) (string, error) {
	script, err := speakerScript(lines)
	if err != nil {
		return "", err
	}
	prompt := "לפניך שיחה בין שני אנשים,\n" +
		"בבקשה תתרגם את השיחה לעברית,\n" +
		"בלי לכתוב את התרגום כשיחה,\n" +
		"זאת אומרת בלי האינדיקטור אדם ונקודותיים, השיחה:\n\n" + script
	return s.ask(ctx, "translate_conversation", prompt, false)
}

// ContinueConversation implements DialogService.
func (s *dialogServiceImpl) ContinueConversation(ctx context.Context, lines []string) (string, error) {
	script, err := speakerScript(lines)
	if err != nil {
		return "", err
	}
	prompt := "תמשיך את השיחה בערבית בעוד משפט אחד,\n" +
		"שים לב לא להוסיף את המילה אדם או את המספר,\n" +
		"זאת אומרת רק את המשפט עצמו ללא שום דיון נוסף, השיחה עד עכשיו:\n\n" + script
	return s.ask(ctx, "continue_conversation", prompt, false)
}

// AnswerConversation implements DialogService.
func (s *dialogServiceImpl) AnswerConversation(ctx context.Context, conv domain.Conversation) (string, error) {
	if conv.Len() == 0 {
		return "", ErrEmptyConversation
	}
	prompt := "תמשיך את השיחה עם משפט אחד בערבית וכתוב תרגום שורה מתחת בעברית:\n\n" +
		conv.Transcript() + "\n"
	return s.ask(ctx, "answer_conversation", prompt, true)
}

// ExplainWord implements DialogService.
func (s *dialogServiceImpl) ExplainWord(ctx context.Context, word string) (domain.WordAnalysis, error) {
	analysis, err := s.analyzer.Analyze(ctx, word)
	if err != nil {
		s.logger.WarnContext(ctx, "word analysis failed", "error", err)
		return domain.WordAnalysis{}, NewServiceError("explain_word", "failed to analyze word", err)
	}
	return analysis, nil
}

func (s *dialogServiceImpl) ask(ctx context.Context, op, prompt string, short bool) (string, error) {
	answer, err := s.llm.Ask(ctx, prompt, short)
	if err != nil {
		err = upstream(err)
		s.logger.ErrorContext(ctx, "dialog request failed", "operation", op, "error", err)
		return "", NewServiceError(op, "language model request failed", err)
	}
	return strings.TrimSpace(answer), nil
}

// speakerScript renders lines as alternating "אדם 1:" / "אדם 2:" turns.
// Blank lines are dropped before numbering.
func speakerScript(lines []string) (string, error) {
	var b strings.Builder
	n := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&b, "אדם %d: %s\n", 1+n%2, line)
		n++
	}
	if n == 0 {
		return "", ErrEmptyConversation
	}
	return b.String(), nil
}
