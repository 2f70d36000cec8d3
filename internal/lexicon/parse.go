package lexicon

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

// Field keys requested from the model, in answer order.
const (
	keyMeaning  = "משמעות"
	keyRoot     = "שורש"
	keyStem     = "בניין"
	keySingular = "יחיד"
	keyPlural   = "רבים"
)

// Fields lists the JSON keys the model is asked to fill.
var Fields = []string{keyMeaning, keyRoot, keyStem, keySingular, keyPlural}

// aliases maps every accepted label to its analysis field.
var aliases = map[string]string{
	keyMeaning:  "meaning",
	"meaning":   "meaning",
	keyRoot:     "root",
	"root":      "root",
	keyStem:     "stem",
	"stem":      "stem",
	"binyan":    "stem",
	"pattern":   "stem",
	keySingular: "singular",
	"singular":  "singular",
	keyPlural:   "plural",
	"plural":    "plural",
}

var (
	codeFence = regexp.MustCompile("(?s)^\\s*```[a-zA-Z]*\\s*(.*?)\\s*```\\s*$")

	labeledField = regexp.MustCompile(
		`(?im)^[\s\-*•]*["']?(?P<label>משמעות|שורש|בניין|יחיד|רבים|meaning|root|stem|binyan|pattern|singular|plural)["']?\s*[:：]\s*(?P<value>.*?)\s*$`)
)

// Parse extracts a word analysis from a model answer. When no recognizable
// shape is found it returns the empty analysis and an error wrapping
// domain.ErrMalformedUpstreamShape. The Word field is left for the caller.
func Parse(raw string) (domain.WordAnalysis, error) {
	text := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	fields, ok := parseJSON(text)
	if !ok {
		fields = parseLabeled(text)
	}
	if len(fields) == 0 {
		return domain.WordAnalysis{}, fmt.Errorf("%w: no analysis fields in answer", domain.ErrMalformedUpstreamShape)
	}

	return domain.WordAnalysis{
		Meaning:  fields["meaning"],
		Root:     fields["root"],
		Stem:     fields["stem"],
		Singular: fields["singular"],
		Plural:   fields["plural"],
	}, nil
}

// parseJSON reads the first JSON object in text. It reports false when text
// holds no object with at least one known key.
func parseJSON(text string) (map[string]string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, false
	}

	fields := make(map[string]string)
	for key, value := range obj {
		name, known := aliases[normalizeLabel(key)]
		if !known {
			continue
		}
		if s := stringValue(value); s != "" {
			fields[name] = s
		}
	}
	return fields, len(fields) > 0
}

// parseLabeled reads "label: value" lines.
func parseLabeled(text string) map[string]string {
	labelIdx := labeledField.SubexpIndex("label")
	valueIdx := labeledField.SubexpIndex("value")

	fields := make(map[string]string)
	for _, m := range labeledField.FindAllStringSubmatch(text, -1) {
		name := aliases[normalizeLabel(m[labelIdx])]
		value := strings.Trim(strings.TrimSpace(m[valueIdx]), `",'`)
		if name == "" || value == "" {
			continue
		}
		if _, seen := fields[name]; !seen {
			fields[name] = value
		}
	}
	return fields
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringValue(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
