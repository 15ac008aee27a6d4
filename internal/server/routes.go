package server

import (
	"net/http"

	"github.com/estimmo/estimmo/internal/agent"
	"github.com/estimmo/estimmo/internal/estimate"
	"github.com/estimmo/estimmo/internal/handler"
	"github.com/estimmo/estimmo/internal/middleware"
	"github.com/estimmo/estimmo/internal/tools"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	// ─── Services ───────────────────────────────────────────────────────────────
	// Credentials are resolved from the environment on every call, so rotated
	// API_USERNAME/API_PASSWORD values take effect without a restart.
	estimateClient := estimate.NewClient(cfg.EstimateBaseURL, cfg.EstimateTimeout(), nil)

	// ─── Tool registry ───────────────────────────────────────────────────────────
	registry := []tools.Tool{
		tools.GreetTool(),
		tools.EstimateTool(estimateClient),
	}

	// ─── AI Agent ────────────────────────────────────────────────────────────────
	var estimmoAgent *agent.Agent
	if cfg.AnthropicAPIKey != "" {
		estimmoAgent = agent.New(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicBaseURL)
	} else {
		log.Warn().Msg("ANTHROPIC_API_KEY not set - AI agent disabled")
	}

	log.Info().
		Str("upstream", cfg.EstimateBaseURL).
		Int("tools", len(registry)).
		Bool("agent_enabled", estimmoAgent != nil).
		Msg("service configuration")

	// ─── Handlers ────────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(estimateClient, estimmoAgent != nil)
	toolsH := handler.NewToolsHandler(registry)
	agentH := handler.NewAgentHandler(estimmoAgent, registry)

	// ─── Router ──────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	r.Route(cfg.APIPrefix, func(r chi.Router) {
		r.Get("/tools", toolsH.List)
		r.Post("/tools/{tool_name}", toolsH.Call)
		r.Post("/agent", agentH.Query)
	})

	return r, nil
}
