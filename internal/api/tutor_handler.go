package api

import (
	"net/http"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/bilingual"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/platform/logger"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/service"
	"github.com/go-chi/chi/v5"
)

// TutorHandler handles bilingual generation and conversation sessions.
type TutorHandler struct {
	tutor       service.TutorService
	minSegments int
}

// NewTutorHandler creates a new TutorHandler. minSegments is the per-language
// segment count reported as bilingual by Parse.
func NewTutorHandler(tutor service.TutorService, minSegments int) *TutorHandler {
	if minSegments < 1 {
		minSegments = 1
	}
	return &TutorHandler{tutor: tutor, minSegments: minSegments}
}

// Generate handles POST /api requests.
func (h *TutorHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id := sessionID(r)
	result, err := h.tutor.Converse(r.Context(), id, req.Input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("bilingual content generated",
		"session_id", id,
		"segments", len(result.Segments),
		"attempts", result.Attempts)

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Message:    segmentPairs(result.Segments),
		SessionID:  id,
		Attempts:   result.Attempts,
		AutoTagged: result.AutoTagged,
	})
}

// Parse handles POST /api/parse requests. It extracts the tagged segments of
// arbitrary text without calling the model.
func (h *TutorHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	doc := bilingual.Extract(req.Input)
	shared.RespondWithJSON(w, r, http.StatusOK, ParseResponse{
		Segments:    doc,
		HebrewCount: doc.Count(domain.Hebrew),
		ArabicCount: doc.Count(domain.Arabic),
		Bilingual:   doc.IsBilingual(h.minSegments),
	})
}

// CreateSession handles POST /api/conversations requests.
func (h *TutorHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.tutor.StartSession(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.Header().Set(shared.SessionIDHeader, id)
	shared.RespondWithJSON(w, r, http.StatusCreated, SessionResponse{SessionID: id, Turns: []string{}})
}

// GetSession handles GET /api/conversations/{id} requests.
func (h *TutorHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	conv, err := h.tutor.History(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, sessionResponse(id, conv))
}

// DeleteSession handles DELETE /api/conversations/{id} requests.
func (h *TutorHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.tutor.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
