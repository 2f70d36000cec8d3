package api

import (
	"net/http"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
)

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
