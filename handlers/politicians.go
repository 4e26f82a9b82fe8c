// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/middleware"
	"github.com/voxobserver/server/models"
)

type PoliticianHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPoliticianHandler(db *sql.DB, cfg cliparse.Config) *PoliticianHandler {
	return &PoliticianHandler{db: db, cfg: cfg}
}

// GetProfile handles GET /api/politicians/:handle
// Returns the identity record, the current party and the full affiliation
// history, oldest first.
func (h *PoliticianHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "handle is required")
		return
	}

	var p models.Politician
	err := h.db.QueryRow(`
		SELECT id, name, handle, twitter, wikipedia
		FROM politicians
		WHERE handle = $1
	`, handle).Scan(&p.ID, &p.Name, &p.Handle, &p.Twitter, &p.Wikipedia)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Politician not found")
		return
	}
	if err != nil {
		slog.Error("failed to query politician", "error", err, "handle", handle)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT party, valid_from, valid_to
		FROM party_affiliations
		WHERE politician_id = $1
		ORDER BY valid_from
	`, p.ID)
	if err != nil {
		slog.Error("failed to query affiliations", "error", err, "handle", handle)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	profile := models.PoliticianProfile{
		Politician:   p,
		Affiliations: []models.PartyAffiliation{},
	}
	for rows.Next() {
		var a models.PartyAffiliation
		if err := rows.Scan(&a.Party, &a.ValidFrom, &a.ValidTo); err != nil {
			slog.Error("failed to scan affiliation", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if a.ValidTo == nil {
			profile.Party = a.Party
		}
		profile.Affiliations = append(profile.Affiliations, a)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read affiliations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// GetVoteLog handles GET /api/votes/:handle
// Returns the raw vote log joined with session metadata, newest session
// first. 404 when the ledger has no votes for the handle, matching the
// voting summary contract.
func (h *PoliticianHandler) GetVoteLog(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "handle is required")
		return
	}

	rows, err := h.db.Query(`
		SELECT vs.external_id, vs.date, vs.time, vs.title, vs.meeting_details, v.vote
		FROM votes v
		JOIN voting_sessions vs ON v.voting_session_id = vs.id
		JOIN politicians p ON v.politician_id = p.id
		WHERE p.handle = $1
		ORDER BY vs.date DESC, vs.id DESC
	`, handle)
	if err != nil {
		slog.Error("failed to query vote log", "error", err, "handle", handle)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.VoteLogEntry{}
	for rows.Next() {
		var e models.VoteLogEntry
		var date, tm, details sql.NullString
		if err := rows.Scan(&e.SessionID, &date, &tm, &e.Title, &details, &e.Vote); err != nil {
			slog.Error("failed to scan vote log entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		e.Date = date.String
		e.Time = tm.String
		e.MeetingDetails = details.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read vote log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(entries) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No voting data found for the given handle")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteLogResponse{Results: entries})
}
