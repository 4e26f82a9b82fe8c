// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/middleware"
	"github.com/voxobserver/server/models"
)

// Provider interfaces for the external collaborators. The concrete clients
// live in the providers package; handlers only see these.

type SummaryProvider interface {
	Summary(ctx context.Context, name string) (models.SummaryResponse, error)
}

type WebSearchProvider interface {
	Search(ctx context.Context, query string) ([]models.WebSearchResult, error)
}

type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// maxPromptLength bounds completion prompts (matches the upstream API cap)
const maxPromptLength = 1000

type ExternalHandler struct {
	db         *sql.DB
	cfg        cliparse.Config
	summary    SummaryProvider
	webSearch  WebSearchProvider
	completion CompletionProvider
}

func NewExternalHandler(db *sql.DB, cfg cliparse.Config, summary SummaryProvider, webSearch WebSearchProvider, completion CompletionProvider) *ExternalHandler {
	return &ExternalHandler{
		db:         db,
		cfg:        cfg,
		summary:    summary,
		webSearch:  webSearch,
		completion: completion,
	}
}

// GetSummary handles GET /api/summary/:handle
// Resolves the handle to the display name, then fetches the encyclopedia
// extract for it.
func (h *ExternalHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "handle is required")
		return
	}

	var name string
	err := h.db.QueryRow(`
		SELECT name FROM politicians WHERE handle = $1
	`, handle).Scan(&name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Politician not found")
		return
	}
	if err != nil {
		slog.Error("failed to resolve handle", "error", err, "handle", handle)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if h.summary == nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "Summary provider not configured")
		return
	}

	summary, err := h.summary.Summary(r.Context(), name)
	if err != nil {
		slog.Error("summary provider failed", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch summary")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// WebSearch handles GET /api/websearch
func (h *ExternalHandler) WebSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Query is required")
		return
	}

	if h.webSearch == nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "Web search provider not configured")
		return
	}

	results, err := h.webSearch.Search(r.Context(), query)
	if err != nil {
		slog.Error("web search provider failed", "error", err, "query", query)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch search results")
		return
	}

	if len(results) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No web search results found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WebSearchResponse{Results: results})
}

// Complete handles POST /api/completion (session required)
// Proxies a prompt to the completion provider and returns its text, used by
// the dashboard as a position label.
func (h *ExternalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req models.CompletionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Prompt is required")
		return
	}
	if len(prompt) > maxPromptLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Prompt is too long (max 1000 characters)")
		return
	}

	if h.completion == nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "Completion provider not configured")
		return
	}

	text, err := h.completion.Complete(r.Context(), prompt)
	if err != nil {
		slog.Error("completion provider failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Error fetching completion")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CompletionResponse{Text: text})
}
