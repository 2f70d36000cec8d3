package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/mocks"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               0,
			LogLevel:           "debug",
			ReadTimeout:        time.Second,
			WriteTimeout:       time.Second,
			IdleTimeout:        time.Second,
			ShutdownTimeout:    time.Second,
			CORSAllowedOrigins: []string{"*"},
			MaxUploadBytes:     1 << 20,
		},
		Generation: config.GenerationConfig{MaxRetries: 2, MinSegments: 1},
	}
}

func testApp(t *testing.T, llm *mocks.MockLLM) *application {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	synth := &mocks.MockSynthesizer{
		SynthesizeFn: func(_ context.Context, text string, _ domain.Language) (speech.Audio, error) {
			return speech.Audio{Data: []byte("RIFF" + text), MIMEType: "audio/wav"}, nil
		},
	}
	app, err := assemble(testConfig(), logger, llm, synth, &mocks.MockTranscriber{Text: "مرحبا"})
	require.NoError(t, err)
	return app
}

func TestAssemble_NilLLM(t *testing.T) {
	_, err := assemble(testConfig(), slog.Default(), nil, &mocks.MockSynthesizer{}, &mocks.MockTranscriber{})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestRouter_BilingualConversation(t *testing.T) {
	llm := &mocks.MockLLM{Answers: []string{
		"no tags at all",
		"<he>שלום</he>\n<ar>مرحبا</ar>",
		"<he>מה שלומך?</he> <ar>كيف حالك؟</ar>",
	}}
	router := testApp(t, llm).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api", strings.NewReader(`{"input":"hello"}`)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":[["שלום","Hebrew"],["مرحبا","Arabic"]],"session_id":"default","attempts":2,"auto_tagged":false}`,
		w.Body.String())
	assert.Len(t, w.Header().Get(shared.TraceIDHeader), 32)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api", strings.NewReader(`{"input":"how are you"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	// The second prompt carries the first exchange as history.
	prompts := llm.Prompts()
	require.Len(t, prompts, 3)
	assert.Contains(t, prompts[2], "hello")
	assert.Contains(t, prompts[2], "<he>שלום</he> <ar>مرحبا</ar>")
	assert.Contains(t, prompts[2], "Current input:")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/conversations/default", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Turns []string `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Len(t, session.Turns, 4)
}

func TestRouter_GenerationExhausted(t *testing.T) {
	llm := &mocks.MockLLM{Answers: []string{"plain", "still plain"}}
	router := testApp(t, llm).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api", strings.NewReader(`{"input":"hello"}`)))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate bilingual content")
}

func TestRouter_ExplainWord(t *testing.T) {
	llm := &mocks.MockLLM{Answers: []string{
		`{"משמעות":"ספר","שורש":"ك ت ب","בניין":"","יחיד":"كِتَاب","רבים":"كُتُب"}`,
	}}
	router := testApp(t, llm).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/explain-word", strings.NewReader(`{"input":"كتاب"}`)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true,"data":{"word":"كتاب","meaning":{
		"meaning":"ספר","root":"ك ت ب","stem":"","singular":"كِتَاب","plural":"كُتُب"}}}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/explain-word", strings.NewReader(`{"input":"two words"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide exactly one word")
}

func TestRouter_SpeechEndpoints(t *testing.T) {
	router := testApp(t, &mocks.MockLLM{}).setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/tts", strings.NewReader(url.Values{"text": {"مرحبا"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/wav", w.Header().Get("Content-Type"))
	assert.Equal(t, "RIFFمرحبا", w.Body.String())
}

func TestRouter_HealthAndCORS(t *testing.T) {
	router := testApp(t, &mocks.MockLLM{}).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodOptions, "/api", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_CORSExplicitOrigins(t *testing.T) {
	app := testApp(t, &mocks.MockLLM{})
	app.config.Server.CORSAllowedOrigins = []string{"https://app.example.com"}
	router := app.setupRouter()

	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example.com", "https://app.example.com"},
		{"https://evil.example.com", ""},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", tc.origin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Header().Get("Access-Control-Allow-Origin"), "origin %s", tc.origin)
	}
}

func TestStartHTTPServer_GracefulShutdown(t *testing.T) {
	app := testApp(t, &mocks.MockLLM{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.startHTTPServer(ctx, app.setupRouter()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
