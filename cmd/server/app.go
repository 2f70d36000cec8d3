package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/config"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/generation"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/lexicon"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/platform/gemini"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/service"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/speech"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Conversation state
	tutorSessions  service.SessionStore
	dialogSessions service.SessionStore

	// Service interfaces
	tutorService  service.TutorService
	dialogService service.DialogService
	speechService service.SpeechService
}

// newApplication connects to Gemini and creates the application with all
// dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	gc, err := gemini.Connect(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini: %w", err)
	}

	llm, err := gemini.NewClient(logger, gc, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	speaker, err := gemini.NewSpeaker(logger, gc, cfg.Speech)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech synthesizer: %w", err)
	}
	transcriber, err := gemini.NewTranscriber(logger, gc, cfg.Speech)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transcriber: %w", err)
	}
	logger.Info("Gemini clients initialized",
		"model", cfg.LLM.ModelName,
		"tts_model", cfg.Speech.TTSModel,
		"stt_model", cfg.Speech.STTModel)

	return assemble(cfg, logger, llm, speaker, transcriber)
}

// assemble builds the services on top of the external adapters.
func assemble(
	cfg *config.Config,
	logger *slog.Logger,
	llm generation.LLM,
	synthesizer speech.Synthesizer,
	transcriber speech.Transcriber,
) (*application, error) {
	app := &application{
		config:         cfg,
		logger:         logger,
		tutorSessions:  service.NewMemorySessionStore(),
		dialogSessions: service.NewMemorySessionStore(),
	}

	generator, err := generation.NewGenerator(llm, logger, generation.Config{
		MaxRetries:  cfg.Generation.MaxRetries,
		MinSegments: cfg.Generation.MinSegments,
		RetryDelay:  cfg.Generation.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bilingual generator: %w", err)
	}

	app.tutorService, err = service.NewTutorService(generator, app.tutorSessions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tutor service: %w", err)
	}

	app.dialogService, err = service.NewDialogService(llm, lexicon.NewAnalyzer(llm, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialog service: %w", err)
	}

	app.speechService, err = service.NewSpeechService(synthesizer, transcriber, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"max_retries", cfg.Generation.MaxRetries,
		"min_segments", cfg.Generation.MinSegments)
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
