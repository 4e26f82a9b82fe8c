// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/voxobserver/server/cache"
	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/handlers"
	"github.com/voxobserver/server/middleware"
	"github.com/voxobserver/server/models"
	"github.com/voxobserver/server/providers"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	attendanceHandler := handlers.NewAttendanceHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	searchHandler := handlers.NewSearchHandler(db, cfg, cache.New[[]models.SearchResult](handlers.SearchCacheTTL))
	trackHandler := handlers.NewTrackHandler(db, cfg)
	politicianHandler := handlers.NewPoliticianHandler(db, cfg)

	// External providers; unset keys leave the provider nil and the handler
	// answers 502 for those routes
	var webSearchProvider handlers.WebSearchProvider
	if cfg.BraveKey != "" {
		webSearchProvider = providers.NewBrave(cfg.BraveKey)
	} else {
		slog.Warn("BRAVE_API_KEY not set, web search disabled")
	}

	var completionProvider handlers.CompletionProvider
	if cfg.OpenAIKey != "" {
		completionProvider = providers.NewCompletion(cfg.OpenAIKey, cfg.OpenAIModel)
	} else {
		slog.Warn("OPENAI_API_KEY not set, completions disabled")
	}

	externalHandler := handlers.NewExternalHandler(db, cfg,
		providers.NewWikipedia(), webSearchProvider, completionProvider)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Aggregations (public)
	mux.HandleFunc("GET /api/attendance/{handle}", middleware.WithLogging(attendanceHandler.GetAttendance))
	mux.HandleFunc("GET /api/voting/{handle}", middleware.WithLogging(votingHandler.GetVotingSummary))

	// Search and tracking (public)
	mux.HandleFunc("GET /api/search", middleware.WithLogging(searchHandler.Search))
	mux.HandleFunc("POST /api/track-search", middleware.WithLogging(trackHandler.TrackSearch))

	// Politician data (public)
	mux.HandleFunc("GET /api/politicians/{handle}", middleware.WithLogging(politicianHandler.GetProfile))
	mux.HandleFunc("GET /api/votes/{handle}", middleware.WithLogging(politicianHandler.GetVoteLog))

	// External lookups
	mux.HandleFunc("GET /api/summary/{handle}", middleware.WithLogging(externalHandler.GetSummary))
	mux.HandleFunc("GET /api/websearch", middleware.WithLogging(externalHandler.WebSearch))
	mux.HandleFunc("POST /api/completion",
		middleware.WithLogging(middleware.WithSession(cfg.SessionSalt, externalHandler.Complete)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("vox-observer API v1"))
	})

	return mux
}
