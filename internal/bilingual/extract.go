package bilingual

import (
	"regexp"
	"sort"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hebrewPair    = regexp.MustCompile(`(?s)<he>(.*?)</he>`)
	arabicPair    = regexp.MustCompile(`(?s)<ar>(.*?)</ar>`)
)

// positioned is a segment together with the byte offset of its opening tag.
type positioned struct {
	offset  int
	segment domain.Segment
}

// Extract returns every well-formed tagged span in text, in reading order.
//
// A span runs from an opening tag to the next closing tag of the same
// language. If several openings precede that closing tag, the span starts at
// the last of them and the earlier ones are treated as unclosed. Unclosed
// tags and spans whose trimmed content is empty are skipped. The result is
// never nil.
func Extract(text string) domain.TaggedDocument {
	if text == "" {
		return domain.TaggedDocument{}
	}

	var found []positioned
	for _, lang := range domain.Languages {
		found = append(found, scan(text, lang)...)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].offset < found[j].offset
	})

	doc := make(domain.TaggedDocument, 0, len(found))
	for _, p := range found {
		doc = append(doc, p.segment)
	}
	return doc
}

// scan finds the spans of a single language.
func scan(text string, lang domain.Language) []positioned {
	open := "<" + lang.Tag() + ">"
	closing := "</" + lang.Tag() + ">"

	var out []positioned
	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], open)
		if i < 0 {
			break
		}
		start := pos + i
		body := start + len(open)

		j := strings.Index(text[body:], closing)
		if j < 0 {
			break
		}
		end := body + j

		// Re-anchor on the nearest opening tag before the closing tag.
		if k := strings.LastIndex(text[body:end], open); k >= 0 {
			start = body + k
			body = start + len(open)
		}

		if content := strings.TrimSpace(text[body:end]); content != "" {
			out = append(out, positioned{
				offset:  start,
				segment: domain.Segment{Text: content, Language: lang},
			})
		}
		pos = end + len(closing)
	}
	return out
}

// FilterByLanguage returns the text of every segment of the given language.
func FilterByLanguage(text string, lang domain.Language) []string {
	return Extract(text).Texts(lang)
}

// Hebrew returns the Hebrew segments of text.
func Hebrew(text string) []string {
	return FilterByLanguage(text, domain.Hebrew)
}

// Arabic returns the Arabic segments of text.
func Arabic(text string) []string {
	return FilterByLanguage(text, domain.Arabic)
}

// Count returns the number of Hebrew and Arabic segments in text.
func Count(text string) (hebrew, arabic int) {
	doc := Extract(text)
	return doc.Count(domain.Hebrew), doc.Count(domain.Arabic)
}

// IsBilingual reports whether text holds at least minPerLanguage segments of
// each language.
func IsBilingual(text string, minPerLanguage int) bool {
	return Extract(text).IsBilingual(minPerLanguage)
}

// Strip removes well-formed tag pairs, keeping their inner text, then drops
// any leftover unpaired tags and collapses whitespace runs to a single space.
// The result never contains a tag token.
func Strip(text string) string {
	if text == "" {
		return ""
	}
	text = hebrewPair.ReplaceAllString(text, "$1")
	text = arabicPair.ReplaceAllString(text, "$1")
	text = anyTag.ReplaceAllString(text, " ")
	return NormalizeWhitespace(text)
}

// NormalizeWhitespace collapses whitespace runs to a single space and trims
// the result.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Format renders segments back into tagged text joined by single spaces.
// Segments with an unrecognized language are skipped.
func Format(segments []domain.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		tag := s.Language.Tag()
		if tag == "" {
			continue
		}
		parts = append(parts, "<"+tag+">"+s.Text+"</"+tag+">")
	}
	return strings.Join(parts, " ")
}
