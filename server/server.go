// Package server provides the podforge HTTP API: content acquisition, streamed
// dialogue generation, and speech synthesis.
package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/extract"
	"github.com/podforge/podforge/pkg/llm"
	"github.com/podforge/podforge/pkg/scrape"
	"github.com/podforge/podforge/pkg/tts"
	"github.com/podforge/podforge/pkg/voices"
)

// Server is the podforge API server. Upstream clients are created once at
// construction and shared across requests.
type Server struct {
	config    Config
	logger    *zap.Logger
	app       *fiber.App
	llm       *llm.Client
	tts       *tts.Client
	scraper   *scrape.Scraper
	extractor *extract.Extractor
}

// New creates a Server with all routes registered.
func New(config Config, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
		// Enable streaming
		StreamRequestBody: true,
		BodyLimit:         config.MaxUploadMB * 1024 * 1024,
	})

	llmClient := llm.NewClient(config.LLM.Endpoint, config.LLM.Model)

	s := &Server{
		config:    config,
		logger:    logger,
		app:       app,
		llm:       llmClient,
		tts:       tts.NewClient(config.TTS.BaseURL, config.TTS.APIKey(), config.TTS.ModelID, logger),
		scraper:   scrape.New(logger),
		extractor: extract.New(llmClient, logger),
	}

	// Register routes
	app.Post("/api/generate-podcast", s.handleGeneratePodcast)
	app.Post("/api/text-to-speech", s.handleTextToSpeech)
	app.Post("/api/scrape", s.handleScrape)
	app.Post("/api/process-file", s.handleProcessFile)
	app.Get("/api/voices", s.handleVoices)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	return s
}

// Run starts the server on the configured listening address.
func (s *Server) Run() error {
	s.logger.Info("starting podforge server",
		zap.String("listen", s.config.ListenAddr),
		zap.String("llm_endpoint", s.config.LLM.Endpoint),
		zap.String("llm_model", s.config.LLM.Model),
		zap.Bool("tts_configured", s.tts.Configured()),
	)

	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleVoices returns the selectable voice catalog and the per-role default
// voice IDs.
func (s *Server) handleVoices(c *fiber.Ctx) error {
	return c.JSON(map[string]any{
		"voices": voices.Catalog(),
		"defaults": map[string]string{
			"speaker1": voices.DefaultSpeaker1,
			"speaker2": voices.DefaultSpeaker2,
		},
	})
}
