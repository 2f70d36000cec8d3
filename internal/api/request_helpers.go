package api

import (
	"net/http"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/service"
)

// decodeAndValidate decodes the JSON body into v and validates it. It writes
// a 400 response and returns false when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// sessionID returns the session named by the X-Session-ID header, or the
// default session.
func sessionID(r *http.Request) string {
	if id := r.Header.Get(shared.SessionIDHeader); id != "" {
		return id
	}
	return service.DefaultSessionID
}
