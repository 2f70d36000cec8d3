package main

import (
	"net/http"
	"slices"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api"
	apiMiddleware "github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/middleware"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(app.config.Server.CORSAllowedOrigins)))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	tutorHandler := api.NewTutorHandler(app.tutorService, app.config.Generation.MinSegments)
	dialogHandler := api.NewDialogHandler(app.dialogService, app.dialogSessions)
	speechHandler := api.NewSpeechHandler(app.speechService, app.config.Server.MaxUploadBytes)

	r.Route("/api", func(r chi.Router) {
		r.Post("/", tutorHandler.Generate)
		r.Post("/parse", tutorHandler.Parse)

		r.Post("/conversations", tutorHandler.CreateSession)
		r.Get("/conversations/{id}", tutorHandler.GetSession)
		r.Delete("/conversations/{id}", tutorHandler.DeleteSession)
	})

	// Dialog practice endpoints
	r.Post("/explain-word", dialogHandler.ExplainWord)
	r.Post("/explain-sentence", dialogHandler.ExplainSentence)
	r.Post("/continue-dialog", dialogHandler.AnswerConversation)
	r.Post("/arabic-speech-continue-conversation", dialogHandler.ContinueConversation)
	r.Post("/arabic-speech-explanation", dialogHandler.ExplainConversation)
	r.Post("/arabic-speech-translation", dialogHandler.TranslateConversation)

	// Speech endpoints
	r.Post("/tts", speechHandler.TextToSpeech)
	r.Post("/stt", speechHandler.SpeechToText)

	r.Get("/health", api.Health)

	return r
}

// corsOptions builds the CORS policy. A "*" entry allows every origin; the
// request origin is echoed back because credentialed responses may not carry
// a literal "*".
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{shared.SessionIDHeader, shared.TraceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if slices.Contains(origins, "*") {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
	} else {
		opts.AllowedOrigins = origins
	}
	return opts
}
