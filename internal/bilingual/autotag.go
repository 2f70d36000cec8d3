package bilingual

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

var (
	hebrewScript = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0590, Hi: 0x05FF, Stride: 1}},
	}
	arabicScript = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
			{Lo: 0x0750, Hi: 0x077F, Stride: 1},
			{Lo: 0x08A0, Hi: 0x08FF, Stride: 1},
		},
	}

	sentenceBreak = regexp.MustCompile(`[.!?]\s+`)
	anyTag        = regexp.MustCompile(`</?(?:he|ar)>`)
)

// HasHebrew reports whether s contains a character from the Hebrew block.
func HasHebrew(s string) bool {
	return containsAny(s, hebrewScript)
}

// HasArabic reports whether s contains a character from the Arabic,
// Arabic Supplement or Arabic Extended-A blocks.
func HasArabic(s string) bool {
	return containsAny(s, arabicScript)
}

func containsAny(s string, table *unicode.RangeTable) bool {
	for _, r := range s {
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}

// AutoTag wraps the sentences of untagged mixed-script text in language tags.
//
// Each sentence holding a Hebrew character becomes a Hebrew span, otherwise
// one holding an Arabic character becomes an Arabic span. Neutral chunks such
// as trailing punctuation are folded into the previous span. It reports false
// when either script is missing from text or when the tagged result does not
// hold a span of each language. Stray tag tokens already in text are removed
// first.
func AutoTag(text string) (string, bool) {
	text = anyTag.ReplaceAllString(text, " ")
	if !HasHebrew(text) || !HasArabic(text) {
		return "", false
	}

	var tagged []string
	for _, chunk := range splitSentences(text) {
		switch {
		case HasHebrew(chunk):
			tagged = append(tagged, "<he>"+chunk+"</he>")
		case HasArabic(chunk):
			tagged = append(tagged, "<ar>"+chunk+"</ar>")
		case len(tagged) > 0:
			tagged[len(tagged)-1] = absorb(tagged[len(tagged)-1], chunk)
		default:
			tagged = append(tagged, chunk)
		}
	}

	result := strings.Join(tagged, " ")
	if !Extract(result).IsBilingual(1) {
		return "", false
	}
	return result, true
}

// AutoTagDocument is AutoTag followed by Extract.
func AutoTagDocument(text string) (domain.TaggedDocument, bool) {
	tagged, ok := AutoTag(text)
	if !ok {
		return nil, false
	}
	return Extract(tagged), true
}

// absorb inserts a neutral chunk just before the closing tag of span. A span
// that is itself an untagged fragment gets a new fragment appended instead.
func absorb(span, chunk string) string {
	for _, lang := range domain.Languages {
		closing := "</" + lang.Tag() + ">"
		if strings.HasSuffix(span, closing) {
			return strings.TrimSuffix(span, closing) + chunk + closing
		}
	}
	return span + " " + chunk
}

// splitSentences splits text after sentence-terminal punctuation that is
// followed by whitespace. The delimiter is kept as its own chunk; all chunks
// are trimmed and empty ones dropped.
func splitSentences(text string) []string {
	var chunks []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			chunks = append(chunks, s)
		}
	}

	prev := 0
	for _, m := range sentenceBreak.FindAllStringIndex(text, -1) {
		add(text[prev:m[0]])
		add(text[m[0]:m[1]])
		prev = m[1]
	}
	add(text[prev:])
	return chunks
}
