// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/middleware"
	"github.com/voxobserver/server/models"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// GetVotingSummary handles GET /api/voting/:handle
// Returns per-category vote counts (every category present, zero or not)
// plus the majority label. 404 when the handle has no votes at all.
func (h *VotingHandler) GetVotingSummary(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "handle is required")
		return
	}

	summary, err := ComputeVotingSummary(h.db, handle)
	if errors.Is(err, ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No voting data found for the given handle")
		return
	}
	if err != nil {
		slog.Error("failed to compute voting summary", "error", err, "handle", handle)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// ComputeVotingSummary tallies the politician's votes into the closed
// category set and derives the majority label. Unrecognized vote values are
// logged and dropped from the tally - a data-quality tolerance, they never
// fail the request. Returns ErrNotFound when the ledger holds no votes for
// the handle.
func ComputeVotingSummary(db *sql.DB, handle string) (models.VotingSummaryResponse, error) {
	rows, err := db.Query(`
		SELECT v.vote
		FROM votes v
		JOIN politicians p ON v.politician_id = p.id
		WHERE p.handle = $1
	`, handle)
	if err != nil {
		return models.VotingSummaryResponse{}, err
	}
	defer rows.Close()

	counts := make(map[models.VoteCategory]int)
	seen := 0
	for rows.Next() {
		var vote string
		if err := rows.Scan(&vote); err != nil {
			return models.VotingSummaryResponse{}, err
		}
		seen++

		category := models.NormalizeVote(vote)
		if category == models.VoteUnrecognized {
			slog.Warn("dropping unrecognized vote value", "vote", vote, "handle", handle)
			continue
		}
		counts[category]++
	}
	if err := rows.Err(); err != nil {
		return models.VotingSummaryResponse{}, err
	}

	if seen == 0 {
		return models.VotingSummaryResponse{}, ErrNotFound
	}

	// Every category appears in the output so the chart can always render
	// the full legend
	data := make([]models.VoteSlice, 0, len(models.VoteCategories))
	total := 0
	for _, c := range models.VoteCategories {
		data = append(data, models.VoteSlice{
			Name:  c.Label(),
			Value: counts[c],
			Fill:  c.Fill(),
		})
		total += counts[c]
	}

	return models.VotingSummaryResponse{
		Data:          data,
		MajorityLabel: models.MajorityLabel(counts),
		TotalVotes:    total,
	}, nil
}
