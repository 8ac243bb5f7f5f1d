package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/punchlinehq/punchline-core/internal/docsite"
)

// buildRouter creates the HTTP router with all routes and middleware.
//
// Every endpoint is mounted twice: at the root (the paths clients already
// use) and under /api/v1 for versioned access. Both trees share handlers.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API documentation site (embedded via go:embed)
	r.Handle("/docs/*", http.StripPrefix("/docs", docsite.Handler(s.cfg.DocsDir)))
	r.Handle("/docs", http.RedirectHandler("/docs/", http.StatusMovedPermanently))

	s.mountRoutes(r)
	r.Route("/api/v1", func(r chi.Router) {
		s.mountRoutes(r)
	})

	return r
}

// mountRoutes registers the joke, event, and health endpoints on r.
func (s *Server) mountRoutes(r chi.Router) {
	r.Get("/health", s.handleHealth)

	r.Route("/jokes", func(r chi.Router) {
		r.Get("/", s.handleListJokes)
		r.Post("/", s.handleCreateJoke)
		r.Get("/stats", s.handleJokeStats)
		r.Get("/random/one", s.handleRandomJoke)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetJoke)
			r.Put("/", s.handleUpdateJoke)
			r.Delete("/", s.handleDeleteJoke)
		})
	})

	// Shared-secret gated create
	r.Post("/advanced-joke", s.handleAdvancedJoke)

	// Realtime subscriber stream
	r.Get("/events", s.handleEvents)
}

// handleHealth returns the server health status and dependency state.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{
		"status":  "ok",
		"version": s.version,
	}
	if s.hub != nil {
		health["subscribers"] = s.hub.SubscriberCount()
	}

	if s.mqtt != nil {
		status := "ok"
		if err := s.mqtt.HealthCheck(r.Context()); err != nil {
			status = "unavailable"
		}
		health["mqtt"] = status
	}
	if s.influx != nil {
		status := "ok"
		if err := s.influx.HealthCheck(r.Context()); err != nil {
			status = "unavailable"
		}
		health["influxdb"] = status
	}

	writeJSON(w, http.StatusOK, health)
}
