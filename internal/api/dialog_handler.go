package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/lexicon"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/platform/logger"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/redact"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/service"
)

// DialogHandler handles the Arabic dialog practice endpoints.
type DialogHandler struct {
	dialog   service.DialogService
	sessions service.SessionStore
}

// NewDialogHandler creates a new DialogHandler. sessions holds the history
// used by ExplainSentence and AnswerConversation.
func NewDialogHandler(dialog service.DialogService, sessions service.SessionStore) *DialogHandler {
	return &DialogHandler{dialog: dialog, sessions: sessions}
}

// ExplainWord handles POST /explain-word requests.
func (h *DialogHandler) ExplainWord(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondWordError(w, r, http.StatusBadRequest, "Invalid request format", "", err)
		return
	}

	analysis, err := h.dialog.ExplainWord(r.Context(), req.Input)
	if err != nil {
		if errors.Is(err, lexicon.ErrNotSingleWord) {
			respondWordError(w, r, http.StatusBadRequest, "Invalid input", "Please provide exactly one word", err)
			return
		}
		respondWordError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), "", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, WordResponse{
		Success: true,
		Data:    wordData(analysis),
	})
}

// ContinueConversation handles POST /arabic-speech-continue-conversation requests.
func (h *DialogHandler) ContinueConversation(w http.ResponseWriter, r *http.Request) {
	h.lines(w, r, h.dialog.ContinueConversation)
}

// ExplainConversation handles POST /arabic-speech-explanation requests.
func (h *DialogHandler) ExplainConversation(w http.ResponseWriter, r *http.Request) {
	h.lines(w, r, h.dialog.ExplainConversation)
}

// TranslateConversation handles POST /arabic-speech-translation requests.
func (h *DialogHandler) TranslateConversation(w http.ResponseWriter, r *http.Request) {
	h.lines(w, r, h.dialog.TranslateConversation)
}

// ExplainSentence handles POST /explain-sentence requests. The question and
// answer are recorded in the session named by X-Session-ID.
func (h *DialogHandler) ExplainSentence(w http.ResponseWriter, r *http.Request) {
	var req ExplainSentenceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id := sessionID(r)
	conv, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	answer, updated, err := h.dialog.ExplainSentence(r.Context(), conv, req.Sentence, req.Question)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.sessions.Save(r.Context(), id, updated); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: answer})
}

// AnswerConversation handles POST /continue-dialog requests. It continues the
// dialog recorded in the session named by X-Session-ID.
func (h *DialogHandler) AnswerConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.sessions.Get(r.Context(), sessionID(r))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	answer, err := h.dialog.AnswerConversation(r.Context(), conv)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: answer})
}

func (h *DialogHandler) lines(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, []string) (string, error),
) {
	var req LinesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answer, err := fn(r.Context(), req.Input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: answer})
}

// respondWordError writes the failure envelope of the word endpoint.
func respondWordError(w http.ResponseWriter, r *http.Request, status int, message, details string, err error) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContext(r.Context()).Log(r.Context(), level, "word explanation failed",
		"status_code", status,
		"error", redact.Error(err))

	shared.RespondWithJSON(w, r, status, WordResponse{
		Success: false,
		Error:   &WordError{Message: message, Details: details},
	})
}
