package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/service"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
)

// multipartMemory is the part of a multipart form kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

// SpeechHandler handles text-to-speech and recitation checks.
type SpeechHandler struct {
	speech         service.SpeechService
	maxUploadBytes int64
}

// NewSpeechHandler creates a new SpeechHandler. Request bodies larger than
// maxUploadBytes are rejected.
func NewSpeechHandler(speech service.SpeechService, maxUploadBytes int64) *SpeechHandler {
	return &SpeechHandler{speech: speech, maxUploadBytes: maxUploadBytes}
}

// TextToSpeech handles POST /tts requests. The form field "text" is read
// aloud; the optional "language" field overrides language detection.
func (h *SpeechHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	var lang domain.Language
	if raw := r.FormValue("language"); raw != "" {
		parsed, err := domain.ParseLanguage(raw)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		lang = parsed
	}

	audio, err := h.speech.Speak(r.Context(), r.FormValue("text"), lang)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", `inline; filename="speech.wav"`)
	shared.RespondWithBytes(w, r, http.StatusOK, audio.MIMEType, audio.Data)
}

// SpeechToText handles POST /stt requests: a multipart "audio" file is
// transcribed and compared with the expected "text" field.
func (h *SpeechHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Audio file is required", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Failed to read audio file", err)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	result, err := h.speech.CheckRecitation(r.Context(), speech.Audio{Data: data, MIMEType: mimeType}, r.FormValue("text"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// parseForm parses a urlencoded or multipart form, capped at maxUploadBytes.
func (h *SpeechHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), err)
		return false
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid form data", err)
	return false
}
