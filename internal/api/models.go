package api

import (
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
)

// Common request/response structures

// InputRequest carries a single text input.
type InputRequest struct {
	Input string `json:"input" validate:"required"`
}

// LinesRequest carries the lines of a two-speaker conversation.
type LinesRequest struct {
	Input []string `json:"input" validate:"required,min=1"`
}

// ExplainSentenceRequest asks a question about an Arabic sentence.
type ExplainSentenceRequest struct {
	Sentence string `json:"sentence" validate:"required"`
	Question string `json:"question" validate:"required"`
}

// GenerateResponse is the result of a bilingual generation.
type GenerateResponse struct {
	// Message holds [text, language] pairs in reading order.
	Message   [][2]string `json:"message"`
	SessionID string      `json:"session_id"`
	Attempts  int         `json:"attempts"`
	// AutoTagged reports that tags were added by the server rather than the model.
	AutoTagged bool `json:"auto_tagged"`
}

// ParseResponse is the structured view of tagged text.
type ParseResponse struct {
	Segments    []domain.Segment `json:"segments"`
	HebrewCount int              `json:"hebrew_count"`
	ArabicCount int              `json:"arabic_count"`
	Bilingual   bool             `json:"bilingual"`
}

// SessionResponse describes a conversation session.
type SessionResponse struct {
	SessionID string   `json:"session_id"`
	Turns     []string `json:"turns"`
}

// MessageResponse wraps a plain text answer.
type MessageResponse struct {
	Message string `json:"message"`
}

// WordResponse is the envelope of the word explanation endpoint. Exactly one
// of Data and Error is set.
type WordResponse struct {
	Success bool       `json:"success"`
	Data    *WordData  `json:"data,omitempty"`
	Error   *WordError `json:"error,omitempty"`
}

// WordData holds a successful word explanation.
type WordData struct {
	Word    string      `json:"word"`
	Meaning WordMeaning `json:"meaning"`
}

// WordMeaning is the morphological breakdown of a word.
type WordMeaning struct {
	Meaning  string `json:"meaning"`
	Root     string `json:"root"`
	Stem     string `json:"stem"`
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// WordError explains why a word could not be explained.
type WordError struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

func segmentPairs(segments []domain.Segment) [][2]string {
	pairs := make([][2]string, 0, len(segments))
	for _, s := range segments {
		pairs = append(pairs, [2]string{s.Text, string(s.Language)})
	}
	return pairs
}

func sessionResponse(id string, conv domain.Conversation) SessionResponse {
	turns := conv.Turns
	if turns == nil {
		turns = []string{}
	}
	return SessionResponse{SessionID: id, Turns: turns}
}

func wordData(a domain.WordAnalysis) *WordData {
	return &WordData{
		Word: a.Word,
		Meaning: WordMeaning{
			Meaning:  a.Meaning,
			Root:     a.Root,
			Stem:     a.Stem,
			Singular: a.Singular,
			Plural:   a.Plural,
		},
	}
}
