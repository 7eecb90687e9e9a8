// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/handlers"
	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/notify"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	notifier := notify.NewDiscord(cfg.RequestsWebhookURL, cfg.SuggestionsWebhookURL, cfg.ReportsWebhookURL)
	authHandler := handlers.NewAuthHandler(db, cfg)
	songsHandler := handlers.NewSongsHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db, cfg)
	requestsHandler := handlers.NewRequestsHandler(db, cfg, notifier)
	assistantHandler := handlers.NewAssistantHandler(cfg)

	// Credential endpoints share one per-IP limiter
	loginLimiter := middleware.NewRateLimiter(rate.Limit(5), 10)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth (public, rate-limited)
	mux.HandleFunc("POST /api/register", middleware.WithLogging(loginLimiter.Wrap(authHandler.Register)))
	mux.HandleFunc("POST /api/login-user", middleware.WithLogging(loginLimiter.Wrap(authHandler.LoginUser)))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(loginLimiter.Wrap(authHandler.LoginAdmin)))

	// Song catalog
	mux.HandleFunc("GET /api/canciones", middleware.WithLogging(songsHandler.List))
	mux.HandleFunc("POST /api/canciones", middleware.WithLogging(middleware.RequireAdmin(cfg.JWTSecret, songsHandler.Create)))

	// Voting and taste profile (registered users)
	mux.HandleFunc("POST /api/canciones/{id}/vote", middleware.WithLogging(middleware.RequireUser(cfg.JWTSecret, votingHandler.Vote)))
	mux.HandleFunc("GET /api/sound-profile", middleware.WithLogging(middleware.RequireUser(cfg.JWTSecret, profileHandler.SoundProfile)))

	// Song requests
	mux.HandleFunc("POST /api/peticiones", middleware.WithLogging(requestsHandler.CreateRequest))
	mux.HandleFunc("GET /api/peticiones", middleware.WithLogging(middleware.RequireAdmin(cfg.JWTSecret, requestsHandler.ListRequests)))
	mux.HandleFunc("PATCH /api/peticiones/{id}/estado", middleware.WithLogging(middleware.RequireAdmin(cfg.JWTSecret, requestsHandler.UpdateRequestStatus)))

	// Suggestions and reports (public)
	mux.HandleFunc("POST /api/sugerencias", middleware.WithLogging(requestsHandler.CreateSuggestion))
	mux.HandleFunc("POST /api/reportes", middleware.WithLogging(requestsHandler.CreateReport))

	// Composing assistant (registered users)
	mux.HandleFunc("POST /api/assistant", middleware.WithLogging(middleware.RequireUser(cfg.JWTSecret, assistantHandler.Ask)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API BeefMusic funcionando"))
	})

	return mux
}
