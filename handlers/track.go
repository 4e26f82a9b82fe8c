// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/voxobserver/server/auth"
	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/middleware"
	"github.com/voxobserver/server/models"
)

type TrackHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewTrackHandler(db *sql.DB, cfg cliparse.Config) *TrackHandler {
	return &TrackHandler{db: db, cfg: cfg}
}

// TrackSearch handles POST /api/track-search
// Bumps the politician's search counter. The increment happens in one
// upsert at the storage layer, never as a read-modify-write in here, so
// concurrent tracks cannot lose updates.
func (h *TrackHandler) TrackSearch(w http.ResponseWriter, r *http.Request) {
	var req models.TrackSearchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PoliticianID == 0 && req.Handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Either politicianId or handle is required")
		return
	}

	// Resolve to an id and confirm the politician exists
	politicianID := req.PoliticianID
	if politicianID == 0 {
		err := h.db.QueryRow(`
			SELECT id FROM politicians WHERE handle = $1
		`, req.Handle).Scan(&politicianID)

		if err == sql.ErrNoRows {
			middleware.ErrorResponse(w, http.StatusNotFound, "Politician not found")
			return
		}
		if err != nil {
			slog.Error("failed to resolve handle", "error", err, "handle", req.Handle)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	} else {
		var exists bool
		err := h.db.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM politicians WHERE id = $1)
		`, politicianID).Scan(&exists)

		if err != nil {
			slog.Error("failed to verify politician", "error", err, "politician_id", politicianID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if !exists {
			middleware.ErrorResponse(w, http.StatusNotFound, "Politician not found")
			return
		}
	}

	// Atomic increment-in-place; creates the counter row on first track
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := h.db.Exec(`
		INSERT INTO search_stats (politician_id, search_count, last_searched)
		VALUES ($1, 1, $2)
		ON CONFLICT (politician_id) DO UPDATE
		SET search_count = search_stats.search_count + 1, last_searched = $2
	`, politicianID, now)

	if err != nil {
		slog.Error("failed to track search", "error", err, "politician_id", politicianID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("search tracked",
		"politician_id", politicianID,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionSalt),
	)

	middleware.JSONResponse(w, http.StatusOK, models.TrackSearchResponse{Success: true})
}
