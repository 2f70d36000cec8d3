package domain

import (
	"fmt"
	"strings"
)

// Language identifies the language of a tagged segment.
type Language string

// Supported languages. The string values are the wire names used in API
// responses.
const (
	Hebrew Language = "Hebrew"
	Arabic Language = "Arabic"
)

// Languages lists the supported languages in tag-scan order.
var Languages = []Language{Hebrew, Arabic}

// Tag returns the short tag name used in the bilingual markup ("he" or "ar").
// It returns an empty string for unrecognized languages.
func (l Language) Tag() string {
	switch l {
	case Hebrew:
		return "he"
	case Arabic:
		return "ar"
	default:
		return ""
	}
}

// Code returns the BCP-47 code used by speech engines.
func (l Language) Code() string {
	switch l {
	case Hebrew:
		return "he-IL"
	case Arabic:
		return "ar-SA"
	default:
		return ""
	}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l.Tag() != ""
}

// ParseLanguage resolves a wire name ("Hebrew"), a tag ("he") or a speech
// code ("he-IL") to a Language. Matching is case-insensitive.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hebrew", "he", "he-il", "iw":
		return Hebrew, nil
	case "arabic", "ar", "ar-sa":
		return Arabic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
}
