// Package main provides the chatbot API server.
package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/HafizhRaihan31/Chatbot-MPL/cmd/chatbot-api/handlers"
	"github.com/HafizhRaihan31/Chatbot-MPL/cmd/chatbot-api/middleware"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/chat"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, store *dataset.Store, chatRouter *chat.Router, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(requestTimeout))

	// Health check, kept at the root the way the deployment platform probes it.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","service":"chatbot-mpl"}`))
	})

	chatHandler := handlers.NewChatHandler(logger, chatRouter)
	teamsHandler := handlers.NewTeamsHandler(logger, store)
	rosterHandler := handlers.NewRosterHandler(logger, store)
	scheduleHandler := handlers.NewScheduleHandler(logger, store)
	standingsHandler := handlers.NewStandingsHandler(logger, store)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamsHandler.List)
			r.Get("/{name}", teamsHandler.Get)
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/", rosterHandler.List)
			r.Get("/{team}", rosterHandler.Get)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", scheduleHandler.List)
			r.Get("/regular", scheduleHandler.Regular)
			r.Get("/playoffs", scheduleHandler.Playoffs)
			r.Get("/team/{name}", scheduleHandler.ByTeam)
		})

		r.Get("/standings", standingsHandler.List)
	})

	return r
}
